package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-events-rest/internal/service"
	"github.com/MKhiriev/go-events-rest/models"
)

func (h *Handler) listRecurringEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.services.EventService.ListRecurringEvents(r.Context())
	if err != nil {
		h.respondError(w, r, "recurring-events", err)
		return
	}

	h.respond(w, r, "recurring-events", events)
}

func (h *Handler) getRecurringEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, r, "recurring-event", service.ErrNoRecurrence)
		return
	}

	event, err := h.services.EventService.GetRecurringEvent(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "recurring-event", err)
		return
	}

	h.respond(w, r, "recurring-event", event)
}

// listOccurrences expands a recurring event. The optional "from" and "to"
// query parameters are RFC 3339 timestamps.
func (h *Handler) listOccurrences(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, r, "occurrences", service.ErrNoRecurrence)
		return
	}

	req := models.OccurrenceRequest{EventID: id}

	var err error
	if req.From, err = timeQueryParam(r, "from"); err != nil {
		h.respondError(w, r, "occurrences", err)
		return
	}
	if req.To, err = timeQueryParam(r, "to"); err != nil {
		h.respondError(w, r, "occurrences", err)
		return
	}

	occurrences, err := h.services.EventService.ListOccurrences(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "occurrences", err)
		return
	}

	h.respond(w, r, "occurrences", occurrences)
}

// timeQueryParam returns the zero time for a missing parameter.
func timeQueryParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", service.ErrInvalidRange, name, err)
	}
	return t, nil
}
