package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/pkg/validator"
)

type UpsertUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	WhatsappNumber string `json:"whatsapp_number" binding:"required"`
}

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, req UpsertUserRequest) (*domain.User, error) {
	u := &domain.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		WhatsappNumber: strings.TrimSpace(req.WhatsappNumber),
	}
	if fields := validator.Validate(u); fields != nil {
		return nil, validationError(fields)
	}

	if _, err := s.users.GetByWhatsappNumber(ctx, u.WhatsappNumber); err == nil {
		return nil, ErrDuplicateNumber
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req UpsertUserRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u.Name = strings.TrimSpace(req.Name)
	u.Email = strings.TrimSpace(req.Email)
	u.WhatsappNumber = strings.TrimSpace(req.WhatsappNumber)
	if fields := validator.Validate(u); fields != nil {
		return nil, validationError(fields)
	}

	if other, err := s.users.GetByWhatsappNumber(ctx, u.WhatsappNumber); err == nil && other.ID != u.ID {
		return nil, ErrDuplicateNumber
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ValidationError carries per-field validator tags back to the handler.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func validationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}
