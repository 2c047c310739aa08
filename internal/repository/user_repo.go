package repository

import (
	"context"
	"strings"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByWhatsappNumber(ctx context.Context, number string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "whatsapp_number = ?", strings.TrimSpace(number)).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("user_id = ?", u.ID).
		Updates(map[string]any{
			"name":            u.Name,
			"email":           u.Email,
			"whatsapp_number": u.WhatsappNumber,
		}).Error
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) CountCreatedSince(ctx context.Context, since string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("created_at >= ?", since).
		Count(&cnt).Error
	return cnt, err
}
