package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/adhdiary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountValidator(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: models.Account{Username: "ann", Password: "pw"}},
		{name: "valid pointer", obj: &models.Account{Username: "ann", Password: "pw"}},
		{name: "nil pointer", obj: (*models.Account)(nil), wantErr: ErrUnsupportedType},
		{name: "wrong type", obj: models.Record{}, wantErr: ErrUnsupportedType},
		{name: "empty username", obj: models.Account{Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "blank username", obj: models.Account{Username: "   ", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "empty password", obj: models.Account{Username: "ann"}, wantErr: ErrEmptyPassword},
		{name: "id is not a validated field", obj: models.Account{Username: "ann"}, fields: []string{"id"}, wantErr: ErrUnknownField},
		{name: "username only", obj: models.Account{Username: "ann"}, fields: []string{FieldUsername}},
		{name: "unknown field", obj: models.Account{}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
