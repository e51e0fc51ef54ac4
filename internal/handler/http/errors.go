// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Error envelope codes. The not-found codes are part of the public contract
// and must not change.
const (
	codeNoEvents      = "events_rest_no_events"
	codeNoEvent       = "events_rest_no_event"
	codeNoLocations   = "locations_rest_no_locations"
	codeNoLocation    = "locations_rest_no_location"
	codeNoRecurrences = "events_rest_no_recurrences"
	codeNoRecurrence  = "events_rest_no_recurrence"

	codeInvalidRange       = "events_rest_invalid_range"
	codeInternalError      = "rest_internal_error"
	codeStorageUnavailable = "rest_storage_unavailable"
	codeRequestTimeout     = "rest_request_timeout"
)

// apiError is one row of the error table: the HTTP status together with the
// envelope code and message.
type apiError struct {
	status  int
	code    string
	message string
}
