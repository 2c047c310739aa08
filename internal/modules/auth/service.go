package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hoteldesk/internal/domain"
	jwtsvc "hoteldesk/internal/pkg/jwt"
)

type Service struct {
	admins     AdminRepository
	tokens     RefreshTokenRepository
	jwt        *jwtsvc.Service
	refreshTTL time.Duration
}

func NewService(admins AdminRepository, tokens RefreshTokenRepository, jwt *jwtsvc.Service, refreshTTL time.Duration) *Service {
	return &Service{
		admins:     admins,
		tokens:     tokens,
		jwt:        jwt,
		refreshTTL: refreshTTL,
	}
}

// Session is what a successful login or refresh hands back to the
// handler: the admin plus both tokens to set as cookies.
type Session struct {
	Admin        *domain.Admin
	AccessToken  string
	RefreshToken string
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(ctx, admin)
}

// Refresh rotates the refresh token. Presenting a token that was
// already rotated or revoked kills every live session for that admin.
func (s *Service) Refresh(ctx context.Context, rawToken string) (*Session, error) {
	if rawToken == "" {
		return nil, ErrInvalidRefresh
	}

	stored, err := s.tokens.GetByHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	if stored.IsRevoked() {
		_ = s.tokens.RevokeByAdmin(ctx, stored.AdminID)
		return nil, ErrInvalidRefresh
	}
	if stored.IsExpired(time.Now().UTC()) {
		return nil, ErrInvalidRefresh
	}

	admin, err := s.admins.GetByID(ctx, stored.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	session, err := s.issueSession(ctx, admin)
	if err != nil {
		return nil, err
	}

	// link the old row to its replacement
	replacement, err := s.tokens.GetByHash(ctx, hashToken(session.RefreshToken))
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Revoke(ctx, stored.ID, &replacement.ID); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	stored, err := s.tokens.GetByHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.tokens.Revoke(ctx, stored.ID, nil)
}

func (s *Service) Me(ctx context.Context, adminID int64) (*domain.Admin, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (s *Service) issueSession(ctx context.Context, admin *domain.Admin) (*Session, error) {
	access, err := s.jwt.GenerateToken(admin.ID, string(admin.Role))
	if err != nil {
		return nil, err
	}

	raw, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	record := &domain.RefreshToken{
		AdminID:   admin.ID,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().UTC().Add(s.refreshTTL),
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return nil, err
	}

	return &Session{
		Admin:        admin,
		AccessToken:  access,
		RefreshToken: raw,
	}, nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
