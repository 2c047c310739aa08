package auth

import (
	"context"
	"testing"
	"time"

	"hoteldesk/internal/domain"
	jwtsvc "hoteldesk/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	args := m.Called(ctx, t)
	if t != nil && t.ID == 0 {
		t.ID = 55
	}
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id int64, replacedByID *int64) error {
	args := m.Called(ctx, id, replacedByID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeByAdmin(ctx context.Context, adminID int64) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

func testAdmin(t *testing.T, password string) *domain.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.Admin{
		ID:           1,
		Email:        "admin@hotel.test",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
}

func newTestService(admins *MockAdminRepository, tokens *MockRefreshTokenRepository) *Service {
	jwt := jwtsvc.New("test-secret", 15*time.Minute)
	return NewService(admins, tokens, jwt, 7*24*time.Hour)
}

func TestLogin_IssuesTokens(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	admin := testAdmin(t, "secret123")
	admins.On("GetByEmail", mock.Anything, "admin@hotel.test").Return(admin, nil)
	tokens.On("Create", mock.Anything, mock.AnythingOfType("*domain.RefreshToken")).Return(nil)

	session, err := svc.Login(context.Background(), "Admin@Hotel.Test", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Len(t, session.RefreshToken, 64)

	claims, err := jwtsvc.New("test-secret", 15*time.Minute).ValidateToken(session.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.AdminID)
	assert.Equal(t, "admin", claims.Role)

	tokens.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(rt *domain.RefreshToken) bool {
		return rt.AdminID == 1 && rt.TokenHash != session.RefreshToken && len(rt.TokenHash) == 64
	}))
}

func TestLogin_WrongPassword(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	admins.On("GetByEmail", mock.Anything, "admin@hotel.test").Return(testAdmin(t, "secret123"), nil)

	_, err := svc.Login(context.Background(), "admin@hotel.test", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	admins.On("GetByEmail", mock.Anything, "nobody@hotel.test").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), "nobody@hotel.test", "secret123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	admin := testAdmin(t, "secret123")
	raw := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	stored := &domain.RefreshToken{
		ID:        10,
		AdminID:   1,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	tokens.On("GetByHash", mock.Anything, hashToken(raw)).Return(stored, nil)
	admins.On("GetByID", mock.Anything, int64(1)).Return(admin, nil)
	tokens.On("Create", mock.Anything, mock.AnythingOfType("*domain.RefreshToken")).Return(nil)
	tokens.On("GetByHash", mock.Anything, mock.MatchedBy(func(h string) bool {
		return h != hashToken(raw)
	})).Return(&domain.RefreshToken{ID: 55, AdminID: 1}, nil)
	tokens.On("Revoke", mock.Anything, int64(10), mock.AnythingOfType("*int64")).Return(nil)

	session, err := svc.Refresh(context.Background(), raw)

	assert.NoError(t, err)
	assert.NotEqual(t, raw, session.RefreshToken)
	tokens.AssertCalled(t, "Revoke", mock.Anything, int64(10), mock.AnythingOfType("*int64"))
}

func TestRefresh_ReuseRevokesAllSessions(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	now := time.Now().UTC()
	raw := "reused-token"
	stored := &domain.RefreshToken{
		ID:        10,
		AdminID:   1,
		TokenHash: hashToken(raw),
		ExpiresAt: now.Add(time.Hour),
		RevokedAt: &now,
	}
	tokens.On("GetByHash", mock.Anything, hashToken(raw)).Return(stored, nil)
	tokens.On("RevokeByAdmin", mock.Anything, int64(1)).Return(nil)

	_, err := svc.Refresh(context.Background(), raw)

	assert.ErrorIs(t, err, ErrInvalidRefresh)
	tokens.AssertCalled(t, "RevokeByAdmin", mock.Anything, int64(1))
}

func TestRefresh_ExpiredToken(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	raw := "expired-token"
	tokens.On("GetByHash", mock.Anything, hashToken(raw)).Return(&domain.RefreshToken{
		ID:        10,
		AdminID:   1,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}, nil)

	_, err := svc.Refresh(context.Background(), raw)

	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefresh_MissingCookie(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	_, err := svc.Refresh(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLogout_RevokesStoredToken(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	raw := "live-token"
	tokens.On("GetByHash", mock.Anything, hashToken(raw)).Return(&domain.RefreshToken{
		ID:      10,
		AdminID: 1,
	}, nil)
	tokens.On("Revoke", mock.Anything, int64(10), (*int64)(nil)).Return(nil)

	err := svc.Logout(context.Background(), raw)

	assert.NoError(t, err)
}

func TestLogout_UnknownTokenIsNoop(t *testing.T) {
	admins := new(MockAdminRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestService(admins, tokens)

	tokens.On("GetByHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Logout(context.Background(), "gone")

	assert.NoError(t, err)
	tokens.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}
