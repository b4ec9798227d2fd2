package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/store"
	"github.com/MKhiriev/adhdiary/models"
)

type recordService struct {
	recordRepository store.RecordRepository
	imageStorage     store.ImageStorage

	logger *logger.Logger
}

func NewRecordService(recordRepository store.RecordRepository, imageStorage store.ImageStorage, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		imageStorage:     imageStorage,
		logger:           logger,
	}
}

func (r *recordService) SaveRecord(ctx context.Context, record models.Record, image io.Reader) (models.Record, error) {
	log := logger.FromContext(ctx)

	record.ImagePath = ""
	if image != nil {
		path, err := r.imageStorage.SaveImage(ctx, image)
		if err != nil {
			log.Err(err).Str("category", record.Category.String()).Msg("image upload failed, saving record without image")
		} else {
			record.ImagePath = path
		}
	}

	saved, err := r.recordRepository.CreateRecord(ctx, record)
	if err != nil {
		log.Err(err).Str("category", record.Category.String()).Int64("owner_id", record.OwnerID).Msg("record creation ended with error")
		return models.Record{}, fmt.Errorf("record creation ended with error: %w", err)
	}

	return saved, nil
}

func (r *recordService) ListRecords(ctx context.Context, ownerID int64, category models.Category) ([]models.Record, error) {
	return r.recordRepository.ListRecords(ctx, ownerID, category)
}

func (r *recordService) GetRecord(ctx context.Context, ownerID int64, category models.Category, id int64) (models.Record, error) {
	return r.recordRepository.GetRecord(ctx, ownerID, category, id)
}

func (r *recordService) DeleteRecord(ctx context.Context, ownerID int64, category models.Category, id int64) error {
	deleted, err := r.recordRepository.DeleteRecord(ctx, ownerID, category, id)
	if err != nil {
		return fmt.Errorf("record deletion ended with error: %w", err)
	}
	if !deleted {
		logger.FromContext(ctx).Debug().
			Str("category", category.String()).
			Int64("id", id).
			Int64("owner_id", ownerID).
			Msg("nothing to delete")
	}

	return nil
}
