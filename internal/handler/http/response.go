package http

import (
	"net/http"

	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/metrics"
	"github.com/MKhiriev/go-events-rest/internal/utils"
)

// respond writes data as a 200 JSON body.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, resource string, data any) {
	h.recordLookup(resource, nil)

	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("resource", resource).Msg("error writing response")
	}
}

// respondError writes the error envelope matching err.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	h.recordLookup(resource, err)

	e := apiErrorFrom(err)
	log := logger.FromRequest(r)
	if e.status >= http.StatusInternalServerError {
		log.Err(err).Str("resource", resource).Str("code", e.code).Msg("request failed")
	} else {
		log.Debug().Str("resource", resource).Str("code", e.code).Msg(e.message)
	}

	if _, werr := utils.WriteError(w, e.status, e.code, e.message); werr != nil {
		log.Err(werr).Str("resource", resource).Msg("error writing error response")
	}
}

func (h *Handler) recordLookup(resource string, err error) {
	if h.metrics == nil {
		return
	}

	outcome := metrics.OutcomeFound
	switch {
	case err == nil:
	case statusFromError(err) == http.StatusNotFound:
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
	}
	h.metrics.RecordLookup(resource, outcome)
}
