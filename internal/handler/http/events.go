package http

import (
	"net/http"

	"github.com/MKhiriev/go-events-rest/internal/service"
)

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.services.EventService.ListEvents(r.Context())
	if err != nil {
		h.respondError(w, r, "events", err)
		return
	}

	h.respond(w, r, "events", events)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, r, "event", service.ErrNoEvent)
		return
	}

	event, err := h.services.EventService.GetEvent(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "event", err)
		return
	}

	h.respond(w, r, "event", event)
}
