package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/store"
	"github.com/MKhiriev/adhdiary/models"
)

type feedService struct {
	recordRepository store.RecordRepository

	logger *logger.Logger
}

func NewFeedService(recordRepository store.RecordRepository, logger *logger.Logger) FeedService {
	return &feedService{
		recordRepository: recordRepository,
		logger:           logger,
	}
}

// BuildFeed merges the owner's records of every category into display items
// sorted by date descending. Dates are compared as plain strings. Items with
// equal dates keep category order (book, diet, daily, food) and, within a
// category, id descending.
func (f *feedService) BuildFeed(ctx context.Context, ownerID int64) ([]models.FeedItem, error) {
	items := make([]models.FeedItem, 0)

	for _, category := range models.Categories {
		records, err := f.recordRepository.ListRecords(ctx, ownerID, category)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("category", category.String()).
				Int64("owner_id", ownerID).
				Msg("listing records for feed failed")
			return nil, fmt.Errorf("listing %s records for feed failed: %w", category, err)
		}

		for _, record := range records {
			items = append(items, models.NewFeedItem(record))
		}
	}

	slices.SortStableFunc(items, func(a, b models.FeedItem) int {
		return strings.Compare(b.Date, a.Date)
	})

	return items, nil
}
