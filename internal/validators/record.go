package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/adhdiary/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOwnerID targets the owner of a record.
	FieldOwnerID = "owner_id"

	// FieldCategory targets the record category.
	FieldCategory = "category"

	// FieldDate targets the free-form record date.
	FieldDate = "date"

	// FieldCategoryFields targets the required category-specific columns.
	FieldCategoryFields = "fields"
)

var defaultRecordFields = []string{FieldOwnerID, FieldCategory, FieldDate, FieldCategoryFields}

// RecordValidator validates [models.Record] values before they are saved.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate accepts models.Record and *models.Record. When no fields are
// named, owner id, category, date and category fields are all checked.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRecordFields
	}

	for _, field := range fields {
		switch field {
		case FieldOwnerID:
			if record.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldCategory:
			if _, err := models.ParseCategory(string(record.Category)); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidCategory, err)
			}
		case FieldDate:
			if strings.TrimSpace(record.Date) == "" {
				return ErrEmptyDate
			}
		case FieldCategoryFields:
			if err := validateCategoryFields(record); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateCategoryFields(record models.Record) error {
	if record.Fields == nil {
		return fmt.Errorf("%w: no fields for %s", ErrMissingFields, record.Category)
	}
	if record.Fields.Category() != record.Category {
		return fmt.Errorf("%w: %s fields for %s record", ErrFieldsMismatch, record.Fields.Category(), record.Category)
	}
	if missing := record.Fields.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	return nil
}
