package server

import (
	"log"
	"strings"

	"github.com/MKhiriev/go-events-rest/internal/logger"
)

// errorLogWriter forwards net/http's internal error log to zerolog.
type errorLogWriter struct {
	logger *logger.Logger
}

func (w errorLogWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Str("source", "net/http").Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

func newErrorLog(logger *logger.Logger) *log.Logger {
	return log.New(errorLogWriter{logger: logger}, "", 0)
}
