package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/adhdiary/internal/config"
	"github.com/MKhiriev/adhdiary/internal/logger"
)

// Storages groups every persistence component used by the service layer.
type Storages struct {
	AccountRepository AccountRepository
	RecordRepository  RecordRepository
	ImageStorage      ImageStorage
}

// NewStorages wires repositories around db and selects the image backend:
// the S3 bucket when one is configured, the local uploads directory
// otherwise.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		images ImageStorage
		err    error
	)

	if cfg.S3.Bucket != "" {
		images, err = NewS3ImageStorage(ctx, cfg.S3, log)
	} else {
		images, err = NewFileImageStorage(cfg.Files.UploadsDir, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating image storage: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		RecordRepository:  NewRecordRepository(db, log),
		ImageStorage:      images,
	}, nil
}
