package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/models"
)

func bookRecord() models.Record {
	return models.Record{
		OwnerID:  1,
		Category: models.Book,
		Date:     "2024-03-01",
		Memo:     "great",
		Fields:   &models.BookFields{BookTitle: "Dune"},
	}
}

// ─── CreateRecord ───

func TestCreateRecord_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO book_records (owner_id,date,memo,image_path,title) VALUES (?,?,?,?,?) RETURNING id")).
		WithArgs(int64(1), "2024-03-01", "great", nil, "Dune").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	saved, err := repo.CreateRecord(testContext(), bookRecord())
	require.NoError(t, err)
	assert.Equal(t, int64(42), saved.ID)
	assert.Equal(t, "📖 Dune", saved.Title())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecord_NoRowReturned(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO book_records").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.CreateRecord(testContext(), bookRecord())
	assert.ErrorIs(t, err, ErrRecordNotSaved)
}

func TestCreateRecord_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO book_records").WillReturnError(errors.New("no such table"))

	_, err := repo.CreateRecord(testContext(), bookRecord())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateRecord_MismatchedFields(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	record := bookRecord()
	record.Category = models.Diet

	_, err := repo.CreateRecord(testContext(), record)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
}

// ─── ListRecords ───

func TestListRecords_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"id", "owner_id", "date", "memo", "image_path", "place", "rating"}).
		AddRow(2, 1, "2024-03-02", nil, "/uploads/x.jpg", "Cafe", "5").
		AddRow(1, 1, "2024-03-01", "tasty", nil, "Diner", "")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, date, memo, image_path, place, rating FROM food_records WHERE owner_id = ? ORDER BY id DESC")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	records, err := repo.ListRecords(testContext(), 1, models.Food)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(2), records[0].ID)
	assert.Empty(t, records[0].Memo)
	assert.Equal(t, "/uploads/x.jpg", records[0].ImagePath)
	assert.Equal(t, &models.FoodFields{Place: "Cafe", Rating: "5"}, records[0].Fields)
	assert.Equal(t, models.Food, records[0].Category)

	assert.Equal(t, "tasty", records[1].Memo)
	assert.Empty(t, records[1].ImagePath)
	assert.Equal(t, "🍴 Diner", records[1].Title())
}

func TestListRecords_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("FROM daily_records").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "date", "memo", "image_path", "emoji"}))

	records, err := repo.ListRecords(testContext(), 1, models.Daily)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListRecords_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("FROM book_records").WillReturnError(errors.New("boom"))

	_, err := repo.ListRecords(testContext(), 1, models.Book)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListRecords_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("FROM book_records").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.ListRecords(testContext(), 1, models.Book)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListRecords_RowsError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"id", "owner_id", "date", "memo", "image_path", "title"}).
		AddRow(1, 1, "2024-03-01", nil, nil, "Dune").
		RowError(0, errors.New("connection reset"))
	mock.ExpectQuery("FROM book_records").WillReturnRows(rows)

	_, err := repo.ListRecords(testContext(), 1, models.Book)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListRecords_UnknownCategory(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	_, err := repo.ListRecords(testContext(), 1, models.Category("movie"))
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

// ─── GetRecord ───

func TestGetRecord_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, date, memo, image_path, weight, meal FROM diet_records WHERE (id = ? AND owner_id = ?)")).
		WithArgs(int64(9), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "date", "memo", "image_path", "weight", "meal"}).
			AddRow(9, 1, "2024-03-01", "light", nil, "70", "salad"))

	record, err := repo.GetRecord(testContext(), 1, models.Diet, 9)
	require.NoError(t, err)
	assert.Equal(t, "⚖️ 70kg - salad", record.Title())
	assert.Equal(t, "light", record.Memo)
}

func TestGetRecord_NotOwnedOrMissing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("FROM diet_records").
		WithArgs(int64(9), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRecord(testContext(), 2, models.Diet, 9)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGetRecord_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectQuery("FROM diet_records").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	_, err := repo.GetRecord(testContext(), 1, models.Diet, 9)
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ─── DeleteRecord ───

func TestDeleteRecord(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "owned record removed", affected: 1, want: true},
		{name: "missing or foreign record is a no-op", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewRecordRepository(db, logger.Nop())

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM book_records WHERE (id = ? AND owner_id = ?)")).
				WithArgs(int64(3), int64(1)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			deleted, err := repo.DeleteRecord(testContext(), 1, models.Book, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
		})
	}
}

func TestDeleteRecord_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM book_records").WillReturnError(errors.New("boom"))

	_, err := repo.DeleteRecord(testContext(), 1, models.Book, 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
