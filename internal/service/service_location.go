package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/store"
	"github.com/MKhiriev/go-events-rest/internal/validators"
	"github.com/MKhiriev/go-events-rest/models"
)

type locationService struct {
	locationRepository store.LocationRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewLocationService(locationRepository store.LocationRepository, validator validators.Validator, logger *logger.Logger) LocationService {
	return &locationService{
		locationRepository: locationRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (l *locationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	locations, err := l.locationRepository.FetchAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "*locationService.ListLocations").Msg("error fetching locations")
		return nil, err
	}

	if len(locations) == 0 {
		return nil, ErrNoLocations
	}

	return locations, nil
}

func (l *locationService) GetLocation(ctx context.Context, id int64) (models.Location, error) {
	log := logger.FromContext(ctx)

	location, err := l.locationRepository.FetchOne(ctx, id)
	if errors.Is(err, store.ErrLocationNotFound) {
		return models.Location{}, ErrNoLocation
	}
	if err != nil {
		log.Err(err).Str("func", "*locationService.GetLocation").Int64("location_id", id).Msg("error fetching location")
		return models.Location{}, err
	}

	if err = l.validator.Validate(ctx, location, validators.FieldLocationID); err != nil {
		return models.Location{}, ErrNoLocation
	}

	return location, nil
}
