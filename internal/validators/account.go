package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/adhdiary/models"
)

const (
	// FieldUsername targets the account username.
	FieldUsername = "username"

	// FieldPassword targets the plain password supplied at signup or login.
	FieldPassword = "password"
)

var defaultAccountFields = []string{FieldUsername, FieldPassword}

// AccountValidator validates credentials submitted on signup and login.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate accepts models.Account and *models.Account. Username and password
// are checked by default.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAccount(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccount(_ context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultAccountFields
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(account.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if account.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
