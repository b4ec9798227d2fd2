package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/adhdiary/internal/config"
	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/store"
	"github.com/MKhiriev/adhdiary/internal/utils"
	"github.com/MKhiriev/adhdiary/internal/validators"
	"github.com/MKhiriev/adhdiary/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification with bcrypt and
// the session token lifecycle.
type authService struct {
	accountRepository store.AccountRepository
	validator         validators.Validator

	// hashCost is the bcrypt work factor used for new password hashes.
	hashCost int

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	sessionIssuer string

	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		validator:         validators.NewAccountValidator(),
		hashCost:          cfg.PasswordHashCost,
		sessionSignKey:    cfg.SessionSignKey,
		sessionIssuer:     cfg.SessionIssuer,
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// SignUp creates a new account.
//
// Returns the persisted account (with a database-assigned ID) or:
//   - ErrInvalidDataProvided if the username or password is empty.
//   - A wrapped store.ErrUsernameAlreadyExists if the username is taken.
func (a *authService) SignUp(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, account); err != nil {
		log.Error().Err(err).Str("username", account.Username).Msg("invalid account data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("username", account.Username).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	account.PasswordHash = string(hash)
	account.Password = ""

	created, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("username", account.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return created, nil
}

// Login authenticates an existing account.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials
// so callers cannot tell which one failed.
func (a *authService) Login(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, account); err != nil {
		log.Error().Err(err).Str("username", account.Username).Msg("invalid account data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	found, err := a.accountRepository.FindAccountByUsername(ctx, account.Username)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Info().Str("username", account.Username).Msg("login for unknown username")
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", account.Username).Msg("account search by username failed")
		return models.Account{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(account.Password)); err != nil {
		log.Info().Int64("id", found.ID).Str("username", found.Username).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	found.PasswordHash = ""
	return found, nil
}

// CreateToken issues a signed session token for the given account.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.sessionIssuer, account.ID, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token. Any validation
// failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
