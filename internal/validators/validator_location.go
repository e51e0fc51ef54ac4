package validators

import (
	"context"

	"github.com/MKhiriev/go-events-rest/models"
)

const FieldLocationID = "location_id"

type LocationValidator struct{}

func NewLocationValidator() Validator {
	return &LocationValidator{}
}

func (v *LocationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Location:
		return v.validateLocation(ctx, value, fields...)
	case *models.Location:
		return v.validateLocation(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *LocationValidator) validateLocation(_ context.Context, location models.Location, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocationID}
	}

	for _, f := range fields {
		switch f {
		case FieldLocationID:
			if location.LocationID <= 0 {
				return ErrInvalidLocationID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
