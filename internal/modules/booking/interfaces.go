package booking

import (
	"context"
	"time"

	"hoteldesk/internal/domain"
)

// BookingRepository defines the storage operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID string) (int64, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error
	Update(ctx context.Context, b *domain.Booking) error
	GetUpcoming(ctx context.Context, from, to *time.Time) ([]domain.Booking, error)
	GetTodayCheckIns(ctx context.Context) ([]domain.Booking, error)
	GetTodayCheckOuts(ctx context.Context) ([]domain.Booking, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetAll(ctx context.Context) ([]domain.Room, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByWhatsappNumber(ctx context.Context, number string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type OfferRepository interface {
	GetActiveByRoom(ctx context.Context, roomID int64) ([]domain.Offer, error)
	GetActive(ctx context.Context) ([]domain.Offer, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByBookingID(ctx context.Context, bookingID string) ([]domain.Payment, error)
}
