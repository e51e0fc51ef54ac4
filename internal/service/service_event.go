package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/recurrence"
	"github.com/MKhiriev/go-events-rest/internal/store"
	"github.com/MKhiriev/go-events-rest/internal/validators"
	"github.com/MKhiriev/go-events-rest/models"
)

const (
	// DefaultOccurrenceWindow is used when the request has no upper bound.
	DefaultOccurrenceWindow = 90 * 24 * time.Hour
	// MaxOccurrenceWindow bounds a single expansion request.
	MaxOccurrenceWindow = 366 * 24 * time.Hour
)

type eventService struct {
	eventRepository store.EventRepository
	expander        *recurrence.Expander
	validator       validators.Validator
	now             func() time.Time

	logger *logger.Logger
}

func NewEventService(eventRepository store.EventRepository, expander *recurrence.Expander, validator validators.Validator, logger *logger.Logger) EventService {
	return &eventService{
		eventRepository: eventRepository,
		expander:        expander,
		validator:       validator,
		now:             time.Now,
		logger:          logger,
	}
}

func (e *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	events, err := e.eventRepository.FetchAll(ctx, models.EventFilter{})
	if err != nil {
		log.Err(err).Str("func", "*eventService.ListEvents").Msg("error fetching events")
		return nil, err
	}

	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	return events, nil
}

func (e *eventService) GetEvent(ctx context.Context, id int64) (models.Event, error) {
	log := logger.FromContext(ctx)

	event, err := e.eventRepository.FetchOne(ctx, id)
	if errors.Is(err, store.ErrEventNotFound) {
		return models.Event{}, ErrNoEvent
	}
	if err != nil {
		log.Err(err).Str("func", "*eventService.GetEvent").Int64("event_id", id).Msg("error fetching event")
		return models.Event{}, err
	}

	if err = e.validator.Validate(ctx, event, validators.FieldEventID); err != nil {
		return models.Event{}, ErrNoEvent
	}

	return event, nil
}

func (e *eventService) ListRecurringEvents(ctx context.Context) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	events, err := e.eventRepository.FetchAll(ctx, models.EventFilter{Recurring: true})
	if err != nil {
		log.Err(err).Str("func", "*eventService.ListRecurringEvents").Msg("error fetching recurring events")
		return nil, err
	}

	// the provider filters already; keep the listing honest if it does not
	recurring := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.IsRecurring() {
			recurring = append(recurring, event)
		}
	}

	if len(recurring) == 0 {
		return nil, ErrNoRecurrences
	}

	return recurring, nil
}

func (e *eventService) GetRecurringEvent(ctx context.Context, id int64) (models.Event, error) {
	log := logger.FromContext(ctx)

	event, err := e.eventRepository.FetchOneRecurring(ctx, id)
	if errors.Is(err, store.ErrEventNotFound) {
		return models.Event{}, ErrNoRecurrence
	}
	if err != nil {
		log.Err(err).Str("func", "*eventService.GetRecurringEvent").Int64("event_id", id).Msg("error fetching recurring event")
		return models.Event{}, err
	}

	if err = e.validator.Validate(ctx, event, validators.FieldEventID, validators.FieldRecurrenceID); err != nil {
		return models.Event{}, ErrNoRecurrence
	}

	return event, nil
}

// ListOccurrences resolves the window (from defaults to now, to defaults to
// from + DefaultOccurrenceWindow), loads the recurring event and expands it.
func (e *eventService) ListOccurrences(ctx context.Context, req models.OccurrenceRequest) ([]models.Occurrence, error) {
	log := logger.FromContext(ctx)

	if req.From.IsZero() {
		req.From = e.now()
	}
	if req.To.IsZero() {
		req.To = req.From.Add(DefaultOccurrenceWindow)
	}
	if err := e.validator.Validate(ctx, req, validators.FieldRange); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}

	event, err := e.GetRecurringEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	occurrences, err := e.expander.Expand(event, req.From, req.To)
	if err != nil {
		log.Err(err).Str("func", "*eventService.ListOccurrences").Int64("event_id", req.EventID).Msg("error expanding recurring event")
		return nil, fmt.Errorf("expanding event %d: %w", req.EventID, err)
	}

	return occurrences, nil
}
