package handler

import (
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-events-rest/internal/config"
	"github.com/MKhiriev/go-events-rest/internal/handler/http"
	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/metrics"
	"github.com/MKhiriev/go-events-rest/internal/service"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so no service is called at construction time.
func newTestServices() *service.Services {
	return &service.Services{}
}

// TestNewHandlers_HTTPAddress verifies that a configured HTTPAddress yields an
// initialised HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{
		HTTPAddress: ":8080",
		Namespace:   config.DefaultNamespace,
	}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.IsType(t, &Handlers{}, h)
}

// TestNewHandlers_NoAddress verifies that without an HTTPAddress NewHandlers
// returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_PassesOptions verifies that options reach the HTTP handler:
// the metrics route is only mounted when WithMetrics was applied.
func TestNewHandlers_PassesOptions(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}
	h, err := NewHandlers(newTestServices(), cfg, logger.Nop(), http.WithMetrics(metrics.NewManager(), "/metrics"))
	require.NoError(t, err)

	router := h.HTTP.Init()
	assert.True(t, router.Match(chi.NewRouteContext(), "GET", "/metrics"))
}

// TestNewHandlers_IndependentInstances verifies that two calls produce
// independent instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
