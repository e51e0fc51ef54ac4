package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-events-rest/internal/app"
	"github.com/MKhiriev/go-events-rest/internal/service"
	"github.com/MKhiriev/go-events-rest/internal/store"
)

// errorTable is matched in order with errors.Is; the first hit wins.
var errorTable = []struct {
	target error
	apiError
}{
	{service.ErrNoEvents, apiError{http.StatusNotFound, codeNoEvents, app.MsgNoEvents}},
	{service.ErrNoEvent, apiError{http.StatusNotFound, codeNoEvent, app.MsgNoEvent}},
	{service.ErrNoLocations, apiError{http.StatusNotFound, codeNoLocations, app.MsgNoLocations}},
	{service.ErrNoLocation, apiError{http.StatusNotFound, codeNoLocation, app.MsgNoLocation}},
	{service.ErrNoRecurrences, apiError{http.StatusNotFound, codeNoRecurrences, app.MsgNoRecurrences}},
	{service.ErrNoRecurrence, apiError{http.StatusNotFound, codeNoRecurrence, app.MsgNoRecurrence}},

	{service.ErrInvalidRange, apiError{http.StatusBadRequest, codeInvalidRange, app.MsgInvalidRange}},

	{store.ErrStorageUnavailable, apiError{http.StatusServiceUnavailable, codeStorageUnavailable, app.MsgStorageUnavailable}},
	{context.DeadlineExceeded, apiError{http.StatusGatewayTimeout, codeRequestTimeout, app.MsgRequestTimeout}},
}

var internalError = apiError{http.StatusInternalServerError, codeInternalError, app.MsgInternalServerError}

func apiErrorFrom(err error) apiError {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.apiError
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return apiErrorFrom(err).status
}
