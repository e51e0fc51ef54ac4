package service

import (
	"context"

	"github.com/MKhiriev/go-events-rest/models"
)

// EventService answers event, recurring event and occurrence lookups.
//
// Every single-record method applies the found invariant: a record counts as
// found only when the provider returned it and its identifying field is set
// and non-zero. Listing methods treat an empty result as not found.
type EventService interface {
	// ListEvents returns all events or [ErrNoEvents].
	ListEvents(ctx context.Context) ([]models.Event, error)
	// GetEvent returns one event or [ErrNoEvent].
	GetEvent(ctx context.Context, id int64) (models.Event, error)

	// ListRecurringEvents returns all events with a recurrence id or
	// [ErrNoRecurrences].
	ListRecurringEvents(ctx context.Context) ([]models.Event, error)
	// GetRecurringEvent returns one event with a recurrence id or
	// [ErrNoRecurrence].
	GetRecurringEvent(ctx context.Context, id int64) (models.Event, error)

	// ListOccurrences expands a recurring event inside the requested window.
	ListOccurrences(ctx context.Context, req models.OccurrenceRequest) ([]models.Occurrence, error)
}

// LocationService answers location lookups.
type LocationService interface {
	// ListLocations returns all locations or [ErrNoLocations].
	ListLocations(ctx context.Context) ([]models.Location, error)
	// GetLocation returns one location or [ErrNoLocation].
	GetLocation(ctx context.Context, id int64) (models.Location, error)
}

// AppInfoService exposes static information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
