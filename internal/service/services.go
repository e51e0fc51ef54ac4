package service

import (
	"github.com/MKhiriev/go-events-rest/internal/config"
	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/recurrence"
	"github.com/MKhiriev/go-events-rest/internal/store"
	"github.com/MKhiriev/go-events-rest/internal/validators"
)

type Services struct {
	EventService    EventService
	LocationService LocationService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		EventService:    NewEventService(storages.EventRepository, recurrence.NewExpander(), validators.NewEventValidator(MaxOccurrenceWindow), logger),
		LocationService: NewLocationService(storages.LocationRepository, validators.NewLocationValidator(), logger),
		AppInfoService:  appInfoService,
	}, nil
}
