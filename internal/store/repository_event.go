package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/models"
)

// eventRepository is the SQL-backed implementation of [EventRepository].
// It reads the "em_events" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type eventRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository] backed by the provided
// database connection and logger.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

// FetchAll returns all events matching filter ordered by event_id.
func (r *eventRepository) FetchAll(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEventsQuery(r.db.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.FetchAll").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.FetchAll").Msg("error executing query")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			log.Err(err).Str("func", "*eventRepository.FetchAll").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*eventRepository.FetchAll").Msg("error iterating rows")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	return events, nil
}

// FetchOne returns the event with the given event_id.
//
// Error handling:
//   - no row → [ErrEventNotFound].
//   - transient driver error → [ErrStorageUnavailable].
//   - any other driver error → [ErrScanningRow].
func (r *eventRepository) FetchOne(ctx context.Context, id int64) (models.Event, error) {
	query, args, err := buildSelectEventByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.Event{}, err
	}

	return r.fetchOne(ctx, "*eventRepository.FetchOne", query, args)
}

// FetchOneRecurring returns the event with the given event_id when its
// recurrence_id is set. Any other row answers [ErrEventNotFound].
func (r *eventRepository) FetchOneRecurring(ctx context.Context, id int64) (models.Event, error) {
	query, args, err := buildSelectRecurringEventByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.Event{}, err
	}

	return r.fetchOne(ctx, "*eventRepository.FetchOneRecurring", query, args)
}

func (r *eventRepository) fetchOne(ctx context.Context, funcName, query string, args []any) (models.Event, error) {
	log := logger.FromContext(ctx)

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Any("args", args).Msg("no event found")
		return models.Event{}, ErrEventNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning event")
		return models.Event{}, r.db.classify(err, ErrScanningRow)
	}

	return event, nil
}
