package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-events-rest/models"
)

const (
	FieldEventID      = "event_id"
	FieldRecurrenceID = "recurrence_id"
	FieldRange        = "range"
)

type EventValidator struct {
	maxWindow time.Duration
}

// NewEventValidator returns a validator for events and occurrence requests.
// A positive maxWindow caps the length of an occurrence range.
func NewEventValidator(maxWindow time.Duration) Validator {
	return &EventValidator{maxWindow: maxWindow}
}

func (v *EventValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Event:
		return v.validateEvent(ctx, value, fields...)
	case *models.Event:
		return v.validateEvent(ctx, *value, fields...)

	case models.OccurrenceRequest:
		return v.validateOccurrenceRequest(ctx, value, fields...)
	case *models.OccurrenceRequest:
		return v.validateOccurrenceRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EventValidator) validateEvent(_ context.Context, event models.Event, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventID}
	}

	for _, f := range fields {
		switch f {
		case FieldEventID:
			if event.EventID <= 0 {
				return ErrInvalidEventID
			}
		case FieldRecurrenceID:
			if !event.IsRecurring() {
				return ErrInvalidRecurrenceID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EventValidator) validateOccurrenceRequest(_ context.Context, request models.OccurrenceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventID, FieldRange}
	}

	for _, f := range fields {
		switch f {
		case FieldEventID:
			if request.EventID <= 0 {
				return ErrInvalidEventID
			}
		case FieldRange:
			if request.From.IsZero() || request.To.IsZero() {
				return ErrEmptyRange
			}
			if request.To.Before(request.From) {
				return fmt.Errorf("%w: end %s, start %s", ErrReversedRange,
					request.To.Format(time.RFC3339), request.From.Format(time.RFC3339))
			}
			if v.maxWindow > 0 && request.To.Sub(request.From) > v.maxWindow {
				return fmt.Errorf("%w: longer than %s", ErrRangeTooLong, v.maxWindow)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
