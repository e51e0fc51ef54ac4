package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	GET {namespace}/events
//	GET {namespace}/event/{id}
//	GET {namespace}/locations
//	GET {namespace}/location/{id}
//	GET {namespace}/recurring-events
//	GET {namespace}/recurring-event/{id}
//	GET {namespace}/recurring-event/{id}/occurrences
//	GET {namespace}/events.ics
//	GET /version
//	GET {metrics path}          when metrics are enabled
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	if h.requestTimeout > 0 {
		router.Use(withRequestTimeout(h.requestTimeout))
	}
	router.Use(withGZip)

	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}

	// resource routes
	router.Group(func(r chi.Router) {
		r.Get(h.route("/events"), h.listEvents)
		r.Get(h.route("/event/{id:\\d+}"), h.getEvent)

		r.Get(h.route("/locations"), h.listLocations)
		r.Get(h.route("/location/{id:\\d+}"), h.getLocation)

		r.Get(h.route("/recurring-events"), h.listRecurringEvents)
		r.Get(h.route("/recurring-event/{id:\\d+}"), h.getRecurringEvent)
		r.Get(h.route("/recurring-event/{id:\\d+}/occurrences"), h.listOccurrences)

		r.Get(h.route("/events.ics"), h.getCalendar)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
