package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-events-rest/internal/config"
	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/metrics"
	"github.com/MKhiriev/go-events-rest/internal/service"
	"github.com/MKhiriev/go-events-rest/models"
)

func TestInit_ReturnsRouter(t *testing.T) {
	env := newTestEnv(t)

	require.NotNil(t, env.router)
}

// expectedRoutes lists every GET route that Init() must register.
var expectedRoutes = []string{
	testNamespace + "/events",
	testNamespace + "/event/1",
	testNamespace + "/locations",
	testNamespace + "/location/1",
	testNamespace + "/recurring-events",
	testNamespace + "/recurring-event/1",
	testNamespace + "/recurring-event/1/occurrences",
	testNamespace + "/events.ics",
	"/version",
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.events.events = []models.Event{{EventID: 1}}
	env.events.event = models.Event{EventID: 1, RecurrenceID: ptr(int64(1))}
	env.events.recurring = env.events.events
	env.events.occurrences = []models.Occurrence{{EventID: 1}}
	env.locations.locations = []models.Location{{LocationID: 1}}
	env.locations.location = models.Location{LocationID: 1}

	for _, path := range expectedRoutes {
		t.Run(path, func(t *testing.T) {
			rec := env.do(http.MethodGet, path)

			assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/nonexistent")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_NonNumericIDNeverReachesHandler(t *testing.T) {
	env := newTestEnv(t)
	env.events.event = models.Event{EventID: 1}

	for _, path := range []string{"/event/abc", "/event/-1", "/event/1.5", "/location/x", "/recurring-event/1a"} {
		t.Run(path, func(t *testing.T) {
			rec := env.get(path)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.NotContains(t, rec.Body.String(), "events_rest")
		})
	}
	assert.Zero(t, env.events.lastID)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	env := newTestEnv(t)
	env.events.events = []models.Event{{EventID: 1}}

	methods := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	paths := []string{"/events", "/event/5", "/locations", "/recurring-event/5"}

	for _, method := range methods {
		for _, path := range paths {
			t.Run(method+" "+path, func(t *testing.T) {
				rec := env.do(method, testNamespace+path)

				assert.Equal(t, http.StatusNotFound, rec.Code)
			})
		}
	}
	assert.Zero(t, env.events.lastID)
}

func TestInit_Namespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		path      string
	}{
		{name: "default", namespace: config.DefaultNamespace, path: "/wp/v2/events"},
		{name: "custom", namespace: "/events-manager/v1", path: "/events-manager/v1/events"},
		{name: "root", namespace: "", path: "/events"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := &service.Services{
				EventService:   &mockEventService{events: []models.Event{{EventID: 1}}},
				AppInfoService: &mockAppInfoService{},
			}
			router := NewHandler(svcs, config.Server{Namespace: tt.namespace}, logger.Nop()).Init()

			env := &testEnv{router: router}
			assert.Equal(t, http.StatusOK, env.do(http.MethodGet, tt.path).Code)
		})
	}
}

func TestInit_MetricsRoute(t *testing.T) {
	m := metrics.NewManager()
	env := newTestEnv(t, WithMetrics(m, config.DefaultMetricsPath))
	env.events.events = []models.Event{{EventID: 1}}

	require.Equal(t, http.StatusOK, env.get("/events").Code)

	rec := env.do(http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `events_rest_http_requests_total{method="GET",route="/wp/v2/events",status_code="200"} 1`)
	assert.Contains(t, rec.Body.String(), `events_rest_provider_lookups_total{outcome="found",resource="events"} 1`)
}

func TestInit_MetricsRouteDisabled(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/metrics").Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/version")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
