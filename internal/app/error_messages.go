// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the REST
// handlers and the API client.
//
// All Msg* constants are the human-readable messages written into the
// "message" field of an error envelope. Clients built against the Events
// Manager REST extension compare against the not-found messages, so their
// wording is fixed.
package app

const (
	// MsgNoEvents is returned when the event listing is empty.
	MsgNoEvents = "No events found"

	// MsgNoEvent is returned when no event carries the requested id.
	MsgNoEvent = "No event with specified id found"

	// MsgNoLocations is returned when the location listing is empty.
	MsgNoLocations = "No locations found"

	// MsgNoLocation is returned when no location carries the requested id.
	MsgNoLocation = "No location with specified id found"

	// MsgNoRecurrences is returned when no event has a recurrence set.
	MsgNoRecurrences = "No recurring events found"

	// MsgNoRecurrence is returned when the requested event does not exist or
	// is not recurring.
	MsgNoRecurrence = "No recurring event with specified id found"

	// MsgInvalidRange is returned when occurrence bounds cannot be parsed,
	// are reversed or span too long a window.
	MsgInvalidRange = "Invalid occurrence range"

	MsgStorageUnavailable  = "Storage is temporarily unavailable"
	MsgRequestTimeout      = "Request timed out"
	MsgInternalServerError = "Internal server error"
)
