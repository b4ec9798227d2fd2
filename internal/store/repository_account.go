package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles account creation and lookup against the "users" table.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns it with the
// database-assigned ID and the creation time.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	createdAt := time.Now().UTC().Truncate(time.Second)
	query, args, err := r.buildCreateAccountQuery(account, createdAt)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to build query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(&account.ID)
	})
	if err != nil {
		if r.classify(err) == UniqueViolation {
			log.Debug().Str("username", account.Username).Msg("username already exists")
			return models.Account{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	account.CreatedAt = createdAt
	account.Password = ""
	return account, nil
}

// FindAccountByUsername retrieves the account with the given username.
// [sql.ErrNoRows] is translated into [ErrAccountNotFound].
func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildFindAccountByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("failed to build query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Account
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Username, &found.PasswordHash, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("failed to scan account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
