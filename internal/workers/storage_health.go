package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-events-rest/internal/logger"
)

const (
	DefaultStorageCheckInterval = 15 * time.Second
	DefaultStorageCheckTimeout  = 2 * time.Second
)

// StorageHealthWorker pings the storage on a ticker and records whether it
// answered.
type StorageHealthWorker struct {
	pinger   Pinger
	recorder StorageStatusRecorder
	interval time.Duration
	timeout  time.Duration

	logger *logger.Logger
}

// NewStorageHealthWorker creates the worker. Non-positive interval or
// timeout fall back to the defaults.
func NewStorageHealthWorker(pinger Pinger, recorder StorageStatusRecorder, interval, timeout time.Duration, logger *logger.Logger) *StorageHealthWorker {
	if interval <= 0 {
		interval = DefaultStorageCheckInterval
	}
	if timeout <= 0 {
		timeout = DefaultStorageCheckTimeout
	}

	return &StorageHealthWorker{
		pinger:   pinger,
		recorder: recorder,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Run checks once immediately, then every interval until ctx is cancelled.
func (w *StorageHealthWorker) Run(ctx context.Context) {
	up := w.check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next := w.check(ctx)
			if next != up {
				w.logger.Info().Bool("up", next).Msg("storage status changed")
			}
			up = next
		}
	}
}

func (w *StorageHealthWorker) check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	err := w.pinger.Ping(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("storage health check failed")
	}

	w.recorder.SetStorageUp(err == nil)
	return err == nil
}
