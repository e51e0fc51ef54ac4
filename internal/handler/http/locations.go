package http

import (
	"net/http"

	"github.com/MKhiriev/go-events-rest/internal/service"
)

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.services.LocationService.ListLocations(r.Context())
	if err != nil {
		h.respondError(w, r, "locations", err)
		return
	}

	h.respond(w, r, "locations", locations)
}

func (h *Handler) getLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, r, "location", service.ErrNoLocation)
		return
	}

	location, err := h.services.LocationService.GetLocation(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "location", err)
		return
	}

	h.respond(w, r, "location", location)
}
