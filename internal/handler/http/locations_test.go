package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-events-rest/internal/service"
	"github.com/MKhiriev/go-events-rest/models"
)

func testLocation(id int64) models.Location {
	return models.Location{
		LocationID: id,
		Name:       "Main Hall",
		Town:       "Springfield",
		Country:    "US",
		Latitude:   ptr(39.78),
		Longitude:  ptr(-89.65),
		Status:     1,
	}
}

func TestListLocations(t *testing.T) {
	env := newTestEnv(t)
	env.locations.locations = []models.Location{testLocation(1), testLocation(2)}

	rec := env.get("/locations")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, env.locations.locations, got)
}

func TestListLocations_EmptyStore(t *testing.T) {
	env := newTestEnv(t)
	env.locations.err = service.ErrNoLocations

	body := decodeError(t, env.get("/locations"), http.StatusNotFound, "locations_rest_no_locations")
	assert.Equal(t, "No locations found", body.Message)
}

func TestListLocations_InternalError(t *testing.T) {
	env := newTestEnv(t)
	env.locations.err = errors.New("boom")

	decodeError(t, env.get("/locations"), http.StatusInternalServerError, "rest_internal_error")
}

func TestGetLocation(t *testing.T) {
	env := newTestEnv(t)
	env.locations.location = testLocation(3)

	rec := env.get("/location/3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), env.locations.lastID)

	var got models.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, env.locations.location, got)
}

func TestGetLocation_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.locations.err = service.ErrNoLocation

	body := decodeError(t, env.get("/location/42"), http.StatusNotFound, "locations_rest_no_location")
	assert.Equal(t, "No location with specified id found", body.Message)
}

func TestGetLocation_IDOverflowIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	decodeError(t, env.get("/location/18446744073709551616"), http.StatusNotFound, "locations_rest_no_location")
	assert.Zero(t, env.locations.lastID)
}
