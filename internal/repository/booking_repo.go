package repository

import (
	"context"
	"time"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		First(&b, "booking_id = ?", bookingID).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CountOverlapping counts non-cancelled bookings for the room whose
// [check_in, check_out) range intersects the given one. excludeBookingID
// keeps a rescheduled booking from colliding with itself.
func (r *BookingRepository) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID string) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", domain.BookingCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeBookingID != "" {
		q = q.Where("booking_id <> ?", excludeBookingID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	updates := map[string]any{"status": status}
	if status == domain.BookingCancelled {
		now := time.Now().UTC()
		updates["cancelled_at"] = now
	}
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("booking_id = ?", bookingID).
		Updates(updates).Error
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// GetUpcoming lists bookings that have not finished yet, newest stay
// first. When a range is given it becomes the calendar feed: bookings
// overlapping [from, to].
func (r *BookingRepository) GetUpcoming(ctx context.Context, from, to *time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Where("status <> ?", domain.BookingCancelled)

	if from != nil && to != nil {
		q = q.Where("check_in <= ? AND check_out >= ?", *to, *from)
	} else {
		q = q.Where("check_out >= ?", startOfToday())
	}

	var bookings []domain.Booking
	err := q.Order("check_in ASC").Find(&bookings).Error
	return bookings, err
}

// GetTodayCheckIns lists stays arriving today that are still in
// "booked" state.
func (r *BookingRepository) GetTodayCheckIns(ctx context.Context) ([]domain.Booking, error) {
	start, end := todayRange()

	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Where("status = ?", domain.BookingBooked).
		Where("check_in >= ? AND check_in < ?", start, end).
		Order("check_in ASC").
		Find(&bookings).Error
	return bookings, err
}

// GetTodayCheckOuts lists stays departing today that are checked in.
func (r *BookingRepository) GetTodayCheckOuts(ctx context.Context) ([]domain.Booking, error) {
	start, end := todayRange()

	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Where("status = ?", domain.BookingCheckedIn).
		Where("check_out >= ? AND check_out < ?", start, end).
		Order("check_out ASC").
		Find(&bookings).Error
	return bookings, err
}

func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func todayRange() (time.Time, time.Time) {
	start := startOfToday()
	return start, start.Add(24 * time.Hour)
}
