package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-events-rest/internal/logger"
)

const (
	selectLocationsSQL = `SELECT (.+) FROM em_locations ORDER BY location_id ASC`
	selectLocationSQL  = `SELECT (.+) FROM em_locations WHERE location_id = \$1`
)

func newTestLocationRepo(t *testing.T, db *sql.DB) LocationRepository {
	t.Helper()
	return NewLocationRepository(newDBFromSQL(db), logger.Nop())
}

func locationRow(id int64) []driver.Value {
	return []driver.Value{
		id, int64(200 + id), "hall", "Main Hall", int64(1), "1 Main St", "Springfield",
		"IL", "62701", "Midwest", "US", 39.78, -89.65, "", int64(1),
	}
}

func locationRows(rows ...[]driver.Value) *sqlmock.Rows {
	r := sqlmock.NewRows(locationColumns)
	for _, row := range rows {
		r.AddRow(row...)
	}
	return r
}

func TestLocationRepository_FetchAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLocationRepo(t, db)

	mock.ExpectQuery(selectLocationsSQL).
		WillReturnRows(locationRows(locationRow(1), locationRow(2)))

	locations, err := repo.FetchAll(testContext())
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, int64(1), locations[0].LocationID)
	assert.Equal(t, "Main Hall", locations[0].Name)
	require.NotNil(t, locations[0].Latitude)
	assert.InDelta(t, 39.78, *locations[0].Latitude, 1e-9)
	assert.Equal(t, int64(2), locations[1].LocationID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_FetchAll_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLocationRepo(t, db)

	mock.ExpectQuery(selectLocationsSQL).WillReturnRows(locationRows())

	locations, err := repo.FetchAll(testContext())
	require.NoError(t, err)
	assert.Empty(t, locations)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_FetchAll_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "query error", err: errors.New("boom"), wantErr: ErrExecutingQuery},
		{name: "retryable", err: pgError(pgerrcode.SerializationFailure), wantErr: ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestLocationRepo(t, db)

			mock.ExpectQuery(selectLocationsSQL).WillReturnError(tt.err)

			locations, err := repo.FetchAll(testContext())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, locations)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLocationRepository_FetchOne(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLocationRepo(t, db)

	mock.ExpectQuery(selectLocationSQL).
		WithArgs(int64(3)).
		WillReturnRows(locationRows(locationRow(3)))

	location, err := repo.FetchOne(testContext(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), location.LocationID)
	assert.Equal(t, "Springfield", location.Town)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_FetchOne_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLocationRepo(t, db)

	mock.ExpectQuery(selectLocationSQL).
		WithArgs(int64(42)).
		WillReturnRows(locationRows())

	_, err := repo.FetchOne(testContext(), 42)
	require.ErrorIs(t, err, ErrLocationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationRepository_FetchOne_RetryableError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLocationRepo(t, db)

	mock.ExpectQuery(selectLocationSQL).
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.AdminShutdown))

	_, err := repo.FetchOne(testContext(), 1)
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}
