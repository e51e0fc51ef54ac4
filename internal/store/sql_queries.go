// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-events-rest/models"
)

const (
	eventsTable    = "em_events"
	locationsTable = "em_locations"
)

var eventColumns = []string{
	"event_id",
	"post_id",
	"event_slug",
	"event_owner",
	"event_status",
	"event_name",
	"event_start",
	"event_end",
	"event_all_day",
	"event_timezone",
	"post_content",
	"location_id",
	"recurrence_id",
	"recurrence_freq",
	"recurrence_interval",
	"recurrence_byday",
	"recurrence_end",
	"event_date_created",
	"event_date_modified",
}

var locationColumns = []string{
	"location_id",
	"post_id",
	"location_slug",
	"location_name",
	"location_owner",
	"location_address",
	"location_town",
	"location_state",
	"location_postcode",
	"location_region",
	"location_country",
	"location_latitude",
	"location_longitude",
	"post_content",
	"location_status",
}

// recurringCondition keeps rows whose recurrence_id is set and non-zero.
func recurringCondition(column string) sq.Sqlizer {
	return sq.And{
		sq.NotEq{column: nil},
		sq.NotEq{column: 0},
	}
}

// buildSelectEventsQuery builds the listing query for events, optionally
// restricted to recurring ones.
func buildSelectEventsQuery(b sq.StatementBuilderType, filter models.EventFilter) (string, []any, error) {
	query := b.Select(eventColumns...).
		From(eventsTable).
		OrderBy("event_id ASC")

	if filter.Recurring {
		query = query.Where(recurringCondition("recurrence_id"))
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildSelectEventByIDQuery builds the single event lookup.
func buildSelectEventByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	sqlQuery, args, err := b.Select(eventColumns...).
		From(eventsTable).
		Where(sq.Eq{"event_id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildSelectRecurringEventByIDQuery builds the single event lookup restricted
// to recurring rows. The row is returned as stored: a generated instance keeps
// its own (usually empty) rule columns.
func buildSelectRecurringEventByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	sqlQuery, args, err := b.Select(eventColumns...).
		From(eventsTable).
		Where(sq.Eq{"event_id": id}).
		Where(recurringCondition("recurrence_id")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildSelectLocationsQuery builds the listing query for locations.
func buildSelectLocationsQuery(b sq.StatementBuilderType) (string, []any, error) {
	sqlQuery, args, err := b.Select(locationColumns...).
		From(locationsTable).
		OrderBy("location_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildSelectLocationByIDQuery builds the single location lookup.
func buildSelectLocationByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	sqlQuery, args, err := b.Select(locationColumns...).
		From(locationsTable).
		Where(sq.Eq{"location_id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var e models.Event
	var recurrenceEnd nullTime
	err := row.Scan(
		&e.EventID,
		&e.PostID,
		&e.Slug,
		&e.Owner,
		&e.Status,
		&e.Name,
		&e.Start,
		&e.End,
		&e.AllDay,
		&e.Timezone,
		&e.Content,
		&e.LocationID,
		&e.RecurrenceID,
		&e.RecurrenceFreq,
		&e.RecurrenceInterval,
		&e.RecurrenceByDay,
		&recurrenceEnd,
		&e.DateCreated,
		&e.DateModified,
	)
	e.RecurrenceEnd = recurrenceEnd.Ptr()

	return e, err
}

func scanLocation(row rowScanner) (models.Location, error) {
	var l models.Location
	err := row.Scan(
		&l.LocationID,
		&l.PostID,
		&l.Slug,
		&l.Name,
		&l.Owner,
		&l.Address,
		&l.Town,
		&l.State,
		&l.Postcode,
		&l.Region,
		&l.Country,
		&l.Latitude,
		&l.Longitude,
		&l.Content,
		&l.Status,
	)

	return l, err
}
