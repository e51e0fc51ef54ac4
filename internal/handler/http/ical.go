package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/service"
	"github.com/MKhiriev/go-events-rest/models"
)

const contentTypeCalendar = "text/calendar; charset=utf-8"

// getCalendar serves all events as an iCalendar feed. Missing locations do
// not fail the feed; events simply go without a LOCATION.
func (h *Handler) getCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	events, err := h.services.EventService.ListEvents(ctx)
	if err != nil {
		h.respondError(w, r, "events.ics", err)
		return
	}

	locations, err := h.services.LocationService.ListLocations(ctx)
	if err != nil && !errors.Is(err, service.ErrNoLocations) {
		h.respondError(w, r, "events.ics", err)
		return
	}

	byID := make(map[int64]models.Location, len(locations))
	for _, l := range locations {
		byID[l.LocationID] = l
	}

	body, err := h.feed.Render(events, byID)
	if err != nil {
		h.respondError(w, r, "events.ics", err)
		return
	}

	h.recordLookup("events.ics", nil)
	w.Header().Set("Content-Type", contentTypeCalendar)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(body)); err != nil {
		log.Err(err).Msg("error writing calendar")
	}
}
