package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-events-rest/internal/service"
	"github.com/MKhiriev/go-events-rest/internal/store"
	"github.com/MKhiriev/go-events-rest/models"
)

func testEvent(id int64) models.Event {
	return models.Event{
		EventID:     id,
		PostID:      100 + id,
		Slug:        fmt.Sprintf("event-%d", id),
		Status:      1,
		Name:        fmt.Sprintf("Event %d", id),
		Start:       time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 5, 4, 20, 0, 0, 0, time.UTC),
		Timezone:    "UTC",
		LocationID:  ptr(int64(1)),
		DateCreated: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestListEvents(t *testing.T) {
	env := newTestEnv(t)
	env.events.events = []models.Event{testEvent(1), testEvent(2)}

	rec := env.get("/events")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=UTF-8", rec.Header().Get("Content-Type"))

	var got []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, env.events.events, got)
}

func TestListEvents_RepeatedRequestsAreByteIdentical(t *testing.T) {
	env := newTestEnv(t)
	env.events.events = []models.Event{testEvent(1), testEvent(2), testEvent(3)}

	first := env.get("/events")
	second := env.get("/events")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestListEvents_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "empty store", err: service.ErrNoEvents, status: http.StatusNotFound, code: "events_rest_no_events"},
		{name: "storage unavailable", err: fmt.Errorf("fetch: %w", store.ErrStorageUnavailable), status: http.StatusServiceUnavailable, code: "rest_storage_unavailable"},
		{name: "deadline", err: fmt.Errorf("fetch: %w", context.DeadlineExceeded), status: http.StatusGatewayTimeout, code: "rest_request_timeout"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: "rest_internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.events.err = tt.err

			decodeError(t, env.get("/events"), tt.status, tt.code)
		})
	}
}

func TestListEvents_EmptyStoreEnvelope(t *testing.T) {
	env := newTestEnv(t)
	env.events.err = service.ErrNoEvents

	rec := env.get("/events")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":"events_rest_no_events","message":"No events found","data":{"status":404}}`, rec.Body.String())
}

func TestGetEvent(t *testing.T) {
	env := newTestEnv(t)
	env.events.event = testEvent(5)

	rec := env.get("/event/5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), env.events.lastID)

	var got models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.EventID)
	assert.Equal(t, env.events.event, got)
}

func TestGetEvent_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.events.err = service.ErrNoEvent

	rec := env.get("/event/99")

	assert.Equal(t, int64(99), env.events.lastID)
	body := decodeError(t, rec, http.StatusNotFound, "events_rest_no_event")
	assert.Equal(t, "No event with specified id found", body.Message)
}

func TestGetEvent_IDOverflowIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.events.event = testEvent(1)

	rec := env.get("/event/99999999999999999999")

	decodeError(t, rec, http.StatusNotFound, "events_rest_no_event")
	assert.Zero(t, env.events.lastID)
}

func TestGetEvent_StorageError(t *testing.T) {
	env := newTestEnv(t)
	env.events.err = store.ErrStorageUnavailable

	decodeError(t, env.get("/event/5"), http.StatusServiceUnavailable, "rest_storage_unavailable")
}
