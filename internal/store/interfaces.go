package store

import (
	"context"
	"io"

	"github.com/MKhiriev/adhdiary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists diary accounts.
type AccountRepository interface {
	// CreateAccount inserts account and returns it with ID and CreatedAt set.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindAccountByUsername returns [ErrAccountNotFound] when no account has
	// the given username.
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
}

// RecordRepository persists diary records in per-category tables. Every
// method is scoped by owner id.
type RecordRepository interface {
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)
	ListRecords(ctx context.Context, ownerID int64, category models.Category) ([]models.Record, error)
	GetRecord(ctx context.Context, ownerID int64, category models.Category, id int64) (models.Record, error)
	DeleteRecord(ctx context.Context, ownerID int64, category models.Category, id int64) (bool, error)
}

// ImageStorage persists uploaded images and returns the path or URL under
// which the image is served.
type ImageStorage interface {
	SaveImage(ctx context.Context, image io.Reader) (string, error)
}

// ErrorClassificator decides how a driver error should be treated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
