package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-events-rest/models"
)

func TestValidate_Location(t *testing.T) {
	tests := []struct {
		name     string
		location any
		fields   []string
		wantErr  error
	}{
		{name: "valid", location: models.Location{LocationID: 3}},
		{name: "valid pointer", location: &models.Location{LocationID: 3}, fields: []string{FieldLocationID}},
		{name: "zero id", location: models.Location{}, wantErr: ErrInvalidLocationID},
		{name: "negative id", location: models.Location{LocationID: -1}, wantErr: ErrInvalidLocationID},
		{name: "unknown field", location: models.Location{LocationID: 3}, fields: []string{FieldEventID}, wantErr: ErrUnknownField},
		{name: "event", location: models.Event{EventID: 3}, wantErr: ErrUnsupportedType},
	}

	v := NewLocationValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.location, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
