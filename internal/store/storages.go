package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-events-rest/internal/config"
	"github.com/MKhiriev/go-events-rest/internal/logger"
)

// Storages groups the data providers used by the service layer.
type Storages struct {
	EventRepository    EventRepository
	LocationRepository LocationRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a connection for cfg.DB.Driver ("pgx" or "sqlite3").
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the event and location repositories.
//
// Returns an error if the driver is unsupported, the database connection
// cannot be established or migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		EventRepository:    NewEventRepository(db, logger),
		LocationRepository: NewLocationRepository(db, logger),
		db:                 db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies that the storage is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNoConnection
	}
	if err := s.db.PingContext(ctx); err != nil {
		return s.db.classify(err, ErrNoConnection)
	}
	return nil
}

// SQLDB exposes the connection pool for pool statistics. It is nil for
// storages built without a connection.
func (s *Storages) SQLDB() *sql.DB {
	if s.db == nil {
		return nil
	}
	return s.db.DB
}
