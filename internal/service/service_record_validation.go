package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/adhdiary/internal/validators"
	"github.com/MKhiriev/adhdiary/models"
)

type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) SaveRecord(ctx context.Context, record models.Record, image io.Reader) (models.Record, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveRecord(ctx, record, image)
}

func (v *RecordValidationService) ListRecords(ctx context.Context, ownerID int64, category models.Category) ([]models.Record, error) {
	if err := v.validateScope(ctx, ownerID, category); err != nil {
		return nil, err
	}

	return v.inner.ListRecords(ctx, ownerID, category)
}

func (v *RecordValidationService) GetRecord(ctx context.Context, ownerID int64, category models.Category, id int64) (models.Record, error) {
	if err := v.validateScope(ctx, ownerID, category); err != nil {
		return models.Record{}, err
	}

	return v.inner.GetRecord(ctx, ownerID, category, id)
}

func (v *RecordValidationService) DeleteRecord(ctx context.Context, ownerID int64, category models.Category, id int64) error {
	if err := v.validateScope(ctx, ownerID, category); err != nil {
		return err
	}

	return v.inner.DeleteRecord(ctx, ownerID, category, id)
}

func (v *RecordValidationService) Wrap(wrapped RecordService) RecordService {
	v.inner = wrapped
	return v
}

// validateScope checks the owner and category a lookup is restricted to.
func (v *RecordValidationService) validateScope(ctx context.Context, ownerID int64, category models.Category) error {
	scope := models.Record{OwnerID: ownerID, Category: category}
	if err := v.validator.Validate(ctx, scope, validators.FieldOwnerID, validators.FieldCategory); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}
