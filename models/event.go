// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Event is a single row of the em_events table as exposed by the REST API.
//
// Optional columns are pointers: a nil value is serialised as JSON null so the
// record shape stays the same for every event.
type Event struct {
	// EventID is the identifying field. A zero EventID means "no event".
	EventID int64 `json:"event_id"`

	// PostID links the event to the CMS post that renders it.
	PostID int64  `json:"post_id"`
	Slug   string `json:"event_slug"`
	Owner  int64  `json:"event_owner"`
	Status int    `json:"event_status"`
	Name   string `json:"event_name"`

	Start    time.Time `json:"event_start"`
	End      time.Time `json:"event_end"`
	AllDay   bool      `json:"event_all_day"`
	Timezone string    `json:"event_timezone"`
	Content  string    `json:"post_content"`

	// LocationID references [Location.LocationID] when the event has a venue.
	LocationID *int64 `json:"location_id"`

	// RecurrenceID is set for events generated from (or acting as) a
	// recurrence template. A non-nil, non-zero value makes the event a
	// recurring event.
	RecurrenceID *int64 `json:"recurrence_id"`

	// RecurrenceFreq is one of daily, weekly, monthly or yearly.
	RecurrenceFreq *string `json:"recurrence_freq"`
	// RecurrenceInterval repeats the event every N periods of RecurrenceFreq.
	RecurrenceInterval *int `json:"recurrence_interval"`
	// RecurrenceByDay is a comma separated list of weekdays, Sunday = 0.
	RecurrenceByDay *string `json:"recurrence_byday"`
	// RecurrenceEnd is the last day on which an occurrence may start.
	RecurrenceEnd *time.Time `json:"recurrence_end"`

	DateCreated  time.Time  `json:"event_date_created"`
	DateModified *time.Time `json:"event_date_modified"`
}

// IsRecurring reports whether the event carries a recurrence id.
func (e Event) IsRecurring() bool {
	return e.RecurrenceID != nil && *e.RecurrenceID != 0
}

// EventFilter narrows an event listing.
type EventFilter struct {
	// Recurring keeps only events whose recurrence_id is set.
	Recurring bool
}
