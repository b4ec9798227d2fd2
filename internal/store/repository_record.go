package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository].
// Each category lives in its own table; every statement filters on the
// owner id.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateRecord inserts record into its category table and returns it with the
// new ID set.
func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildCreateRecordQuery(record)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CreateRecord").
			Str("category", record.Category.String()).
			Msg("failed to build query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(&record.ID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CreateRecord").
			Int64("owner_id", record.OwnerID).
			Str("category", record.Category.String()).
			Msg("failed to insert record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// ListRecords returns every record of category owned by ownerID, newest
// (highest id) first.
func (r *recordRepository) ListRecords(ctx context.Context, ownerID int64, category models.Category) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListRecordsQuery(ownerID, category)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Str("category", category.String()).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Int64("owner_id", ownerID).
			Str("category", category.String()).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows, category)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.ListRecords").
				Int64("owner_id", ownerID).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Int64("owner_id", ownerID).
			Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// GetRecord returns the record with id in category if it belongs to ownerID,
// and [ErrRecordNotFound] otherwise.
func (r *recordRepository) GetRecord(ctx context.Context, ownerID int64, category models.Category, id int64) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetRecordQuery(ownerID, category, id)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecord").
			Str("category", category.String()).
			Msg("failed to build query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanRecord(r.QueryRowContext(ctx, query, args...), category)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecord").
			Int64("owner_id", ownerID).
			Int64("id", id).
			Msg("failed to scan row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// DeleteRecord removes the record with id in category if it belongs to
// ownerID. It reports whether a row was removed; a missing or foreign record
// is not an error.
func (r *recordRepository) DeleteRecord(ctx context.Context, ownerID int64, category models.Category, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteRecordQuery(ownerID, category, id)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("category", category.String()).
			Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Int64("owner_id", ownerID).
			Int64("id", id).
			Msg("failed to execute delete")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}
