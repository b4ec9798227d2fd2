package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/models"
)

const (
	insertAccountSQL = "INSERT INTO users (username,password_hash,created_at) VALUES (?,?,?) RETURNING id"
	findAccountSQL   = "SELECT id, username, password_hash, created_at FROM users WHERE username = ?"
)

func TestCreateAccount_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(insertAccountSQL)).
		WithArgs("alice", "hash", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateAccount(testContext(), models.Account{
		Username: "alice", Password: "plain", PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Empty(t, created.Password)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	tests := []struct {
		name  string
		newDB func(t *testing.T) (*DB, sqlmock.Sqlmock)
		err   error
		query string
	}{
		{
			name:  "sqlite",
			newDB: newTestDB,
			err:   sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			query: "INSERT INTO users",
		},
		{
			name:  "postgres",
			newDB: newTestPostgresDB,
			err:   pgError(pgerrcode.UniqueViolation),
			query: "INSERT INTO users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := tt.newDB(t)
			repo := NewAccountRepository(db, logger.Nop())

			mock.ExpectQuery(tt.query).WillReturnError(tt.err)

			_, err := repo.CreateAccount(testContext(), models.Account{Username: "alice"})
			assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
		})
	}
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.CreateAccount(testContext(), models.Account{Username: "alice"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateAccount_RetriesBusyDatabase(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	created, err := repo.CreateAccount(testContext(), models.Account{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAccountByUsername_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(findAccountSQL)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(1, "alice", "hash", now))

	found, err := repo.FindAccountByUsername(testContext(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.Account{ID: 1, Username: "alice", PasswordHash: "hash", CreatedAt: now}, found)
}

func TestFindAccountByUsername_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(findAccountSQL)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAccountByUsername(testContext(), "ghost")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFindAccountByUsername_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(findAccountSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.FindAccountByUsername(testContext(), "alice")
	assert.ErrorIs(t, err, ErrScanningRow)
}
