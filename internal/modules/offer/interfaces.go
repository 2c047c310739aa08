package offer

import (
	"context"

	"hoteldesk/internal/domain"
)

type OfferRepository interface {
	Create(ctx context.Context, o *domain.Offer) error
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	GetAll(ctx context.Context) ([]domain.Offer, error)
	GetActiveByRoom(ctx context.Context, roomID int64) ([]domain.Offer, error)
	Update(ctx context.Context, o *domain.Offer) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
