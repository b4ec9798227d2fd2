package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/adhdiary/internal/logger"
)

// UploadsURLPrefix is the URL path under which the local uploads directory is
// served.
const UploadsURLPrefix = "/uploads/"

const imageExtension = ".jpg"

// fileImageStorage writes uploaded images into a local directory.
type fileImageStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileImageStorage creates dir if needed and returns an [ImageStorage]
// that writes into it.
func NewFileImageStorage(dir string, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file image storage")
	return &fileImageStorage{dir: dir, logger: logger}, nil
}

// SaveImage copies image into a new file with a random name and returns its
// public path.
func (s *fileImageStorage) SaveImage(ctx context.Context, image io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name := uuid.NewString() + imageExtension
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "fileImageStorage.SaveImage").Msg("failed to create image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if _, err = io.Copy(f, image); err != nil {
		f.Close()
		os.Remove(path)
		log.Err(err).Str("func", "fileImageStorage.SaveImage").Msg("failed to write image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if err = f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	log.Debug().Str("path", path).Msg("image saved")
	return UploadsURLPrefix + name, nil
}
