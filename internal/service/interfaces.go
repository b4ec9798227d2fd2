package service

import (
	"context"
	"io"

	"github.com/MKhiriev/adhdiary/models"
)

type AuthService interface {
	SignUp(ctx context.Context, account models.Account) (models.Account, error)
	Login(ctx context.Context, account models.Account) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type RecordService interface {
	// SaveRecord stores record for its owner. A non-nil image is uploaded
	// first; an upload failure leaves ImagePath empty and the record is
	// still saved.
	SaveRecord(ctx context.Context, record models.Record, image io.Reader) (models.Record, error)
	ListRecords(ctx context.Context, ownerID int64, category models.Category) ([]models.Record, error)
	GetRecord(ctx context.Context, ownerID int64, category models.Category, id int64) (models.Record, error)
	// DeleteRecord removes the record if it belongs to ownerID. Deleting a
	// missing or foreign record is not an error.
	DeleteRecord(ctx context.Context, ownerID int64, category models.Category, id int64) error
}

type FeedService interface {
	BuildFeed(ctx context.Context, ownerID int64) ([]models.FeedItem, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validating.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService // returns a decorated RecordService applying additional behavior
}
