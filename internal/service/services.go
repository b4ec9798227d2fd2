package service

import (
	"fmt"

	"github.com/MKhiriev/adhdiary/internal/config"
	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/store"
)

type Services struct {
	AuthService    AuthService
	RecordService  RecordService
	FeedService    FeedService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	recordService := NewRecordValidationService().Wrap(
		NewRecordService(storages.RecordRepository, storages.ImageStorage, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, cfg.App, logger),
		RecordService:  recordService,
		FeedService:    NewFeedService(storages.RecordRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
