package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-events-rest/internal/recurrence"
	"github.com/MKhiriev/go-events-rest/internal/service"
	"github.com/MKhiriev/go-events-rest/models"
)

func testRecurringEvent(id int64) models.Event {
	e := testEvent(id)
	e.RecurrenceID = ptr(id)
	e.RecurrenceFreq = ptr("weekly")
	e.RecurrenceInterval = ptr(1)
	e.RecurrenceByDay = ptr("1")
	return e
}

func TestListRecurringEvents(t *testing.T) {
	env := newTestEnv(t)
	env.events.recurring = []models.Event{testRecurringEvent(2), testRecurringEvent(7)}

	rec := env.get("/recurring-events")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	for _, e := range got {
		assert.True(t, e.IsRecurring())
	}
}

func TestListRecurringEvents_None(t *testing.T) {
	env := newTestEnv(t)
	env.events.err = service.ErrNoRecurrences

	body := decodeError(t, env.get("/recurring-events"), http.StatusNotFound, "events_rest_no_recurrences")
	assert.Equal(t, "No recurring events found", body.Message)
}

func TestGetRecurringEvent(t *testing.T) {
	env := newTestEnv(t)
	env.events.event = testRecurringEvent(2)

	rec := env.get("/recurring-event/2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), env.events.lastID)

	var got models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, env.events.event, got)
}

func TestGetRecurringEvent_NotRecurring(t *testing.T) {
	env := newTestEnv(t)
	env.events.err = service.ErrNoRecurrence

	body := decodeError(t, env.get("/recurring-event/1"), http.StatusNotFound, "events_rest_no_recurrence")
	assert.Equal(t, "No recurring event with specified id found", body.Message)
}

func TestGetRecurringEvent_IDOverflowIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	decodeError(t, env.get("/recurring-event/99999999999999999999"), http.StatusNotFound, "events_rest_no_recurrence")
	assert.Zero(t, env.events.lastID)
}

func TestListOccurrences(t *testing.T) {
	env := newTestEnv(t)
	env.events.occurrences = []models.Occurrence{
		{EventID: 2, RecurrenceID: 2, Name: "Weekly", Start: time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC), End: time.Date(2026, 5, 4, 20, 0, 0, 0, time.UTC)},
	}

	rec := env.get("/recurring-event/2/occurrences?from=2026-05-01T00:00:00Z&to=2026-05-31T23:59:59Z")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), env.events.lastReq.EventID)
	assert.True(t, env.events.lastReq.From.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, env.events.lastReq.To.Equal(time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC)))

	var got []models.Occurrence
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, env.events.occurrences, got)
}

func TestListOccurrences_DefaultsAreLeftToService(t *testing.T) {
	env := newTestEnv(t)
	env.events.occurrences = []models.Occurrence{}

	rec := env.get("/recurring-event/2/occurrences")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.True(t, env.events.lastReq.From.IsZero())
	assert.True(t, env.events.lastReq.To.IsZero())
}

func TestListOccurrences_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
		code   string
	}{
		{name: "bad from", query: "?from=yesterday", status: http.StatusBadRequest, code: "events_rest_invalid_range"},
		{name: "bad to", query: "?to=2026-13-01", status: http.StatusBadRequest, code: "events_rest_invalid_range"},
		{name: "range rejected by service", err: service.ErrInvalidRange, status: http.StatusBadRequest, code: "events_rest_invalid_range"},
		{name: "not recurring", err: service.ErrNoRecurrence, status: http.StatusNotFound, code: "events_rest_no_recurrence"},
		{name: "invalid rule", err: fmt.Errorf("expanding event 2: %w", recurrence.ErrInvalidRule), status: http.StatusInternalServerError, code: "rest_internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.events.err = tt.err

			decodeError(t, env.get("/recurring-event/2/occurrences"+tt.query), tt.status, tt.code)
		})
	}
}
