package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwnerID  = errors.New("invalid owner ID")
	ErrInvalidCategory = errors.New("invalid category")
	ErrEmptyDate       = errors.New("date is required")
	ErrMissingFields   = errors.New("required fields are missing")
	ErrFieldsMismatch  = errors.New("fields do not match record category")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
)
