package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/adhdiary/models"
)

const usersTable = "users"

var (
	accountColumns    = []string{"id", "username", "password_hash", "created_at"}
	recordBaseColumns = []string{"id", "owner_id", "date", "memo", "image_path"}
)

func (db *DB) buildCreateAccountQuery(account models.Account, createdAt time.Time) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "password_hash", "created_at").
		Values(account.Username, account.PasswordHash, createdAt).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildFindAccountByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(accountColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) buildCreateRecordQuery(record models.Record) (string, []any, error) {
	if record.Fields == nil || record.Fields.Category() != record.Category {
		return "", nil, fmt.Errorf("%w: fields do not match category %q", models.ErrUnknownCategory, record.Category)
	}

	columns := append([]string{"owner_id", "date", "memo", "image_path"}, record.Fields.Columns()...)
	values := append([]any{record.OwnerID, record.Date, nullString(record.Memo), nullString(record.ImagePath)}, record.Fields.Values()...)

	return db.builder.
		Insert(record.Category.Table()).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildListRecordsQuery(ownerID int64, category models.Category) (string, []any, error) {
	columns, err := recordColumns(category)
	if err != nil {
		return "", nil, err
	}

	return db.builder.
		Select(columns...).
		From(category.Table()).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id DESC").
		ToSql()
}

func (db *DB) buildGetRecordQuery(ownerID int64, category models.Category, id int64) (string, []any, error) {
	columns, err := recordColumns(category)
	if err != nil {
		return "", nil, err
	}

	return db.builder.
		Select(columns...).
		From(category.Table()).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"owner_id": ownerID}}).
		ToSql()
}

func (db *DB) buildDeleteRecordQuery(ownerID int64, category models.Category, id int64) (string, []any, error) {
	if category.NewFields() == nil {
		return "", nil, fmt.Errorf("%w: %q", models.ErrUnknownCategory, category)
	}

	return db.builder.
		Delete(category.Table()).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"owner_id": ownerID}}).
		ToSql()
}

func recordColumns(category models.Category) ([]string, error) {
	fields := category.NewFields()
	if fields == nil {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownCategory, category)
	}
	return append(append([]string{}, recordBaseColumns...), fields.Columns()...), nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner, category models.Category) (models.Record, error) {
	record := models.Record{Category: category, Fields: category.NewFields()}
	var memo, imagePath sql.NullString

	dest := append([]any{&record.ID, &record.OwnerID, &record.Date, &memo, &imagePath}, record.Fields.ScanDest()...)
	if err := row.Scan(dest...); err != nil {
		return models.Record{}, err
	}

	record.Memo = memo.String
	record.ImagePath = imagePath.String
	return record, nil
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
