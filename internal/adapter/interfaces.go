// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the events REST server.
//
// The primary abstraction is [EventsAdapter], which hides the HTTP transport
// from callers. The package ships an HTTP/REST implementation
// ([NewHTTPEventsAdapter]) built on resty.
//
// Error envelopes returned by the server are decoded into [*APIError], which
// unwraps to the sentinel values defined in errors.go so that callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404) or [errors.As] to read the code.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-events-rest/models"
)

// EventsAdapter defines read access to the events REST server.
type EventsAdapter interface {
	// ListEvents fetches GET {namespace}/events.
	ListEvents(ctx context.Context) ([]models.Event, error)

	// GetEvent fetches GET {namespace}/event/{id}.
	GetEvent(ctx context.Context, id int64) (models.Event, error)

	// ListLocations fetches GET {namespace}/locations.
	ListLocations(ctx context.Context) ([]models.Location, error)

	// GetLocation fetches GET {namespace}/location/{id}.
	GetLocation(ctx context.Context, id int64) (models.Location, error)

	// ListRecurringEvents fetches GET {namespace}/recurring-events.
	ListRecurringEvents(ctx context.Context) ([]models.Event, error)

	// GetRecurringEvent fetches GET {namespace}/recurring-event/{id}.
	GetRecurringEvent(ctx context.Context, id int64) (models.Event, error)

	// ListOccurrences fetches GET {namespace}/recurring-event/{id}/occurrences.
	// Zero from or to are omitted and the server defaults apply.
	ListOccurrences(ctx context.Context, id int64, from, to time.Time) ([]models.Occurrence, error)

	// GetCalendar fetches the iCalendar feed at GET {namespace}/events.ics.
	GetCalendar(ctx context.Context) (string, error)

	// GetServerVersion fetches GET /version.
	GetServerVersion(ctx context.Context) (string, error)
}
