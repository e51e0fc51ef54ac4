package store

import (
	"context"

	"github.com/MKhiriev/go-events-rest/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EventRepository is the data provider for events and recurring events.
type EventRepository interface {
	// FetchAll returns every event matching filter ordered by event_id.
	// An empty store yields an empty slice and a nil error.
	FetchAll(ctx context.Context, filter models.EventFilter) ([]models.Event, error)

	// FetchOne returns the event with the given event_id or
	// [ErrEventNotFound].
	FetchOne(ctx context.Context, id int64) (models.Event, error)

	// FetchOneRecurring returns the event with the given event_id with its
	// recurrence rule resolved from the recurrence template when the event
	// itself does not carry one. Returns [ErrEventNotFound] when no row
	// matches. The event is returned even when it is not recurring.
	FetchOneRecurring(ctx context.Context, id int64) (models.Event, error)
}

// LocationRepository is the data provider for locations.
type LocationRepository interface {
	// FetchAll returns every location ordered by location_id.
	FetchAll(ctx context.Context) ([]models.Location, error)

	// FetchOne returns the location with the given location_id or
	// [ErrLocationNotFound].
	FetchOne(ctx context.Context, id int64) (models.Location, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
