// Package metrics provides Prometheus metrics for the events REST server.
//
// A [Manager] owns its own registry, so several managers (for example one
// per test) never collide on metric names.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes recorded by [Manager.RecordLookup].
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom histogram buckets for latency metrics.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRuntimeCollectors registers the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(m *Manager) {
		m.runtimeCollectors = true
	}
}

// WithDBStats exports the connection pool statistics of db.
func WithDBStats(db *sql.DB, name string) Option {
	return func(m *Manager) {
		if db != nil {
			m.db = db
			m.dbName = name
		}
	}
}

// Manager holds the collectors of the server.
type Manager struct {
	namespace         string
	histogramBuckets  []float64
	runtimeCollectors bool
	registry          *prometheus.Registry

	db     *sql.DB
	dbName string

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	lookups             *prometheus.CounterVec
	storageUp           prometheus.Gauge
}

// NewManager creates a metrics manager backed by a fresh registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "events_rest",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.lookups = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "provider",
			Name:      "lookups_total",
			Help:      "Provider lookups by resource and outcome",
		},
		[]string{"resource", "outcome"},
	)

	m.storageUp = auto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: "storage",
			Name:      "up",
			Help:      "Whether the last storage health check succeeded (1) or failed (0)",
		},
	)

	if m.db != nil {
		m.registry.MustRegister(collectors.NewDBStatsCollector(m.db, m.dbName))
	}

	if m.runtimeCollectors {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
}

// RecordLookup records the outcome of a provider lookup for resource
// (events, event, locations, ...).
func (m *Manager) RecordLookup(resource, outcome string) {
	m.lookups.WithLabelValues(resource, outcome).Inc()
}

// SetStorageUp records the result of a storage health check.
func (m *Manager) SetStorageUp(up bool) {
	if up {
		m.storageUp.Set(1)
		return
	}
	m.storageUp.Set(0)
}

// Registry returns the registry the collectors are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
