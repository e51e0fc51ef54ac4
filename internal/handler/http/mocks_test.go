package http

import (
	"context"

	"github.com/MKhiriev/go-events-rest/models"
)

// mockEventService is a hand-written stub of service.EventService.
type mockEventService struct {
	events      []models.Event
	event       models.Event
	recurring   []models.Event
	occurrences []models.Occurrence
	err         error
	// waitForDeadline makes ListEvents block until ctx is done and return
	// its error.
	waitForDeadline bool

	lastID  int64
	lastReq models.OccurrenceRequest
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	if m.waitForDeadline {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return m.events, m.err
}

func (m *mockEventService) GetEvent(_ context.Context, id int64) (models.Event, error) {
	m.lastID = id
	return m.event, m.err
}

func (m *mockEventService) ListRecurringEvents(_ context.Context) ([]models.Event, error) {
	return m.recurring, m.err
}

func (m *mockEventService) GetRecurringEvent(_ context.Context, id int64) (models.Event, error) {
	m.lastID = id
	return m.event, m.err
}

func (m *mockEventService) ListOccurrences(_ context.Context, req models.OccurrenceRequest) ([]models.Occurrence, error) {
	m.lastReq = req
	return m.occurrences, m.err
}

// mockLocationService is a hand-written stub of service.LocationService.
type mockLocationService struct {
	locations []models.Location
	location  models.Location
	err       error

	lastID int64
}

func (m *mockLocationService) ListLocations(_ context.Context) ([]models.Location, error) {
	return m.locations, m.err
}

func (m *mockLocationService) GetLocation(_ context.Context, id int64) (models.Location, error) {
	m.lastID = id
	return m.location, m.err
}

// mockAppInfoService is a hand-written stub of service.AppInfoService.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
