package dashboard

import (
	"context"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

type DashboardRepository interface {
	BookingStatusCounts(ctx context.Context) ([]repository.StatusCount, error)
	CountBookingsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	BookingCreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error)
	PaidAmountBetween(ctx context.Context, from, to time.Time) (float64, error)
	TotalPaidAmount(ctx context.Context) (float64, error)
	RevenueTrend(ctx context.Context, from, to time.Time) ([]repository.RevenuePoint, error)
	RevenueByRoom(ctx context.Context, from, to time.Time) ([]repository.RoomRevenue, error)
	PaymentStatusBreakdown(ctx context.Context, from, to time.Time) ([]repository.PaymentStatusRow, error)
	OccupiedRoomNights(ctx context.Context, from, to time.Time) (int64, error)
	TotalRoomCount(ctx context.Context) (int64, error)
}

type UserRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since string) (int64, error)
}

type BookingRepository interface {
	GetUpcoming(ctx context.Context, from, to *time.Time) ([]domain.Booking, error)
	GetTodayCheckIns(ctx context.Context) ([]domain.Booking, error)
	GetTodayCheckOuts(ctx context.Context) ([]domain.Booking, error)
}
