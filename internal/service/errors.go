package service

import "errors"

// Not-found errors. Each one maps onto a single error envelope code at the
// HTTP layer.
var (
	ErrNoEvents      = errors.New("no events found")
	ErrNoEvent       = errors.New("no event with specified id found")
	ErrNoLocations   = errors.New("no locations found")
	ErrNoLocation    = errors.New("no location with specified id found")
	ErrNoRecurrences = errors.New("no recurring events found")
	ErrNoRecurrence  = errors.New("no recurring event with specified id found")
)

var (
	// ErrInvalidRange is returned for an occurrence window whose end precedes
	// its start or that spans more than MaxOccurrenceWindow.
	ErrInvalidRange = errors.New("invalid occurrence range")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
