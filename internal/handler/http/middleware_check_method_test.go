// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/wp/v2/events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("events"))
	})
	router.Get("/wp/v2/event/{id:\\d+}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(chi.URLParam(r, "id")))
	})
	router.Post("/wp/v2/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/wp/v2/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "GET static route passes through",
			method:         http.MethodGet,
			path:           "/wp/v2/events",
			expectedStatus: http.StatusOK,
			expectedBody:   "events",
		},
		{
			name:           "GET parameterised route passes through",
			method:         http.MethodGet,
			path:           "/wp/v2/event/5",
			expectedStatus: http.StatusOK,
			expectedBody:   "5",
		},
		{
			name:           "POST on GET-only static route is 404",
			method:         http.MethodPost,
			path:           "/wp/v2/events",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "DELETE on parameterised route is 404",
			method:         http.MethodDelete,
			path:           "/wp/v2/event/5",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "PUT on route with GET and POST is 404",
			method:         http.MethodPut,
			path:           "/wp/v2/items",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "POST registered alongside GET passes through",
			method:         http.MethodPost,
			path:           "/wp/v2/items",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "HEAD is not served",
			method:         http.MethodHead,
			path:           "/wp/v2/events",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_DirectCallForwardsMatchedMethod(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	req := httptest.NewRequest(http.MethodGet, "/wp/v2/event/7", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", rec.Body.String())
}
