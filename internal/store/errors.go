// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEventNotFound is returned when no em_events row matches the
	// requested event_id.
	ErrEventNotFound = errors.New("event was not found")

	// ErrLocationNotFound is returned when no em_locations row matches the
	// requested location_id.
	ErrLocationNotFound = errors.New("location was not found")

	// ErrStorageUnavailable wraps driver errors that the configured
	// [ErrorClassificator] reports as [Retryable] (lost connection,
	// serialization failure, locked database).
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver name
	// other than "pgx" or "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrNoConnection is returned by [Storages.Ping] when the storage has no
	// connection or the ping fails with a non-transient error.
	ErrNoConnection = errors.New("no storage connection")
)
