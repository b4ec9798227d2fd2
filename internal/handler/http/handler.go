package http

import (
	"time"

	"github.com/MKhiriev/adhdiary/internal/config"
	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/service"
	"github.com/MKhiriev/adhdiary/internal/utils"
)

type Handler struct {
	services *service.Services

	// uploadsDir is served under /uploads/ when images are kept on local disk.
	uploadsDir string

	secureCookies   bool
	sessionDuration time.Duration
	requestTimeout  time.Duration

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:        services,
		secureCookies:   cfg.Server.SecureCookies,
		sessionDuration: cfg.App.SessionDuration,
		requestTimeout:  cfg.Server.RequestTimeout,
		traceIDs:        utils.NewUUIDGenerator(),
		logger:          logger,
	}
	if cfg.Storage.S3.Bucket == "" {
		h.uploadsDir = cfg.Storage.Files.UploadsDir
	}

	logger.Info().Msg("http handler created")
	return h
}
