package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/models"
)

// locationRepository is the SQL-backed implementation of [LocationRepository].
// It reads the "em_locations" table.
type locationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocationRepository constructs a [LocationRepository] backed by the
// provided database connection and logger.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{
		db:     db,
		logger: logger,
	}
}

// FetchAll returns all locations ordered by location_id.
func (r *locationRepository) FetchAll(ctx context.Context) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocationsQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.FetchAll").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.FetchAll").Msg("error executing query")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	locations := make([]models.Location, 0)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			log.Err(err).Str("func", "*locationRepository.FetchAll").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*locationRepository.FetchAll").Msg("error iterating rows")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	return locations, nil
}

// FetchOne returns the location with the given location_id or
// [ErrLocationNotFound].
func (r *locationRepository) FetchOne(ctx context.Context, id int64) (models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocationByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.Location{}, err
	}

	location, err := scanLocation(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*locationRepository.FetchOne").Int64("location_id", id).Msg("no location found")
		return models.Location{}, ErrLocationNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.FetchOne").Msg("error scanning location")
		return models.Location{}, r.db.classify(err, ErrScanningRow)
	}

	return location, nil
}
