package repository

import (
	"context"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	var o domain.Offer
	err := r.db.WithContext(ctx).Preload("Room").First(&o, "offer_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) GetAll(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.WithContext(ctx).Preload("Room").Order("created_at DESC").Find(&offers).Error
	return offers, err
}

// GetActiveByRoom returns the room's active offers in insertion order.
// The pricing calculator depends on that order: the first match wins.
func (r *OfferRepository) GetActiveByRoom(ctx context.Context, roomID int64) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND is_active = ?", roomID, true).
		Order("offer_id ASC").
		Find(&offers).Error
	return offers, err
}

func (r *OfferRepository) GetActive(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("offer_id ASC").
		Find(&offers).Error
	return offers, err
}

func (r *OfferRepository) Update(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OfferRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Offer{}, "offer_id = ?", id).Error
}
