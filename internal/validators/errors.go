package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEventID      = errors.New("invalid event ID")
	ErrInvalidRecurrenceID = errors.New("invalid recurrence ID")
	ErrEmptyRange          = errors.New("range bounds are required")
	ErrReversedRange       = errors.New("range end is before its start")
	ErrRangeTooLong        = errors.New("range is too long")

	ErrInvalidLocationID = errors.New("invalid location ID")
)
