package http

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/adhdiary/internal/config"
	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/service"
	"github.com/MKhiriev/adhdiary/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, account models.Account) (models.Account, error)
	loginFn       func(ctx context.Context, account models.Account) (models.Account, error)
	createTokenFn func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, account models.Account) (models.Account, error) {
	return m.signUpFn(ctx, account)
}

func (m *mockAuthService) Login(ctx context.Context, account models.Account) (models.Account, error) {
	return m.loginFn(ctx, account)
}

func (m *mockAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return m.createTokenFn(ctx, account)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockRecordService struct {
	saveFn   func(ctx context.Context, record models.Record, image io.Reader) (models.Record, error)
	listFn   func(ctx context.Context, ownerID int64, category models.Category) ([]models.Record, error)
	getFn    func(ctx context.Context, ownerID int64, category models.Category, id int64) (models.Record, error)
	deleteFn func(ctx context.Context, ownerID int64, category models.Category, id int64) error
}

func (m *mockRecordService) SaveRecord(ctx context.Context, record models.Record, image io.Reader) (models.Record, error) {
	return m.saveFn(ctx, record, image)
}

func (m *mockRecordService) ListRecords(ctx context.Context, ownerID int64, category models.Category) ([]models.Record, error) {
	return m.listFn(ctx, ownerID, category)
}

func (m *mockRecordService) GetRecord(ctx context.Context, ownerID int64, category models.Category, id int64) (models.Record, error) {
	return m.getFn(ctx, ownerID, category, id)
}

func (m *mockRecordService) DeleteRecord(ctx context.Context, ownerID int64, category models.Category, id int64) error {
	return m.deleteFn(ctx, ownerID, category, id)
}

type mockFeedService struct {
	buildFeedFn func(ctx context.Context, ownerID int64) ([]models.FeedItem, error)
}

func (m *mockFeedService) BuildFeed(ctx context.Context, ownerID int64) ([]models.FeedItem, error) {
	return m.buildFeedFn(ctx, ownerID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testOwnerID    = int64(42)
	validSession   = "valid-session"
	invalidSession = "bad-session"
)

// sessionAuth accepts validSession for testOwnerID and rejects anything else.
func sessionAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			if s != validSession {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{OwnerID: testOwnerID}, nil
		},
	}
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{SessionDuration: 24 * time.Hour},
	}
}

// newTestHandler builds a Handler around svcs, filling in session and
// version mocks when they are not set.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AuthService == nil {
		svcs.AuthService = sessionAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, testConfig(), logger.Nop())
}
