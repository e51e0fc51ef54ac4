package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-events-rest/internal/calendar"
	"github.com/MKhiriev/go-events-rest/internal/config"
	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/metrics"
	"github.com/MKhiriev/go-events-rest/internal/service"
)

type Handler struct {
	services *service.Services

	namespace      string
	requestTimeout time.Duration

	metrics     *metrics.Manager
	metricsPath string

	feed *calendar.Feed

	logger *logger.Logger
}

// Option customises a [Handler].
type Option func(*Handler)

// WithMetrics records request and lookup metrics on m and exposes them at
// path (outside the namespace).
func WithMetrics(m *metrics.Manager, path string) Option {
	return func(h *Handler) {
		h.metrics = m
		h.metricsPath = path
	}
}

// WithCalendarFeed overrides the feed used by the iCalendar route.
func WithCalendarFeed(feed *calendar.Feed) Option {
	return func(h *Handler) {
		if feed != nil {
			h.feed = feed
		}
	}
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:       services,
		namespace:      cfg.Namespace,
		requestTimeout: cfg.RequestTimeout,
		feed:           calendar.NewFeed(""),
		logger:         logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Str("namespace", h.namespace).Msg("http handler created")
	return h
}

// route prefixes path with the namespace.
func (h *Handler) route(path string) string {
	return h.namespace + path
}

// idParam reads the numeric {id} segment. The router only lets digits
// through, so the only failure left is an id that does not fit into int64.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
