package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/version")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestGetServerVersion_OutsideNamespace(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/version")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetServerVersion_WrongMethod(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/version")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
