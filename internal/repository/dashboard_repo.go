package repository

import (
	"context"
	"time"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

// DashboardRepository holds the aggregate queries behind the dashboard
// and reports screens. DATE() is used instead of dialect-specific date
// functions so the queries run on both postgres and sqlite.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type RoomRevenue struct {
	RoomName string  `json:"room_name"`
	Revenue  float64 `json:"revenue"`
}

type PaymentStatusRow struct {
	Status          string  `json:"status"`
	Count           int64   `json:"count"`
	TotalBillAmount float64 `json:"totalBillAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	PendingAmount   float64 `json:"pendingAmount"`
}

func (r *DashboardRepository) BookingStatusCounts(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("status, COUNT(1) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *DashboardRepository) CountBookingsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&cnt).Error
	return cnt, err
}

// BookingCreationTimes returns raw creation timestamps in a window; the
// dashboard service buckets them into hours so the SQL stays portable.
func (r *DashboardRepository) BookingCreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Pluck("created_at", &times).Error
	return times, err
}

func (r *DashboardRepository) PaidAmountBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Select("COALESCE(SUM(bill_paid_amount), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *DashboardRepository) TotalPaidAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Select("COALESCE(SUM(bill_paid_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *DashboardRepository) RevenueTrend(ctx context.Context, from, to time.Time) ([]RevenuePoint, error) {
	var rows []RevenuePoint
	q := `
SELECT DATE(created_at)                  AS date,
       COALESCE(SUM(bill_paid_amount), 0) AS revenue
FROM payments
WHERE created_at >= ? AND created_at < ?
GROUP BY DATE(created_at)
ORDER BY date ASC
`
	err := r.db.WithContext(ctx).Raw(q, from, to).Scan(&rows).Error
	return rows, err
}

func (r *DashboardRepository) RevenueByRoom(ctx context.Context, from, to time.Time) ([]RoomRevenue, error) {
	var rows []RoomRevenue
	q := `
SELECT r.room_name                        AS room_name,
       COALESCE(SUM(p.bill_paid_amount), 0) AS revenue
FROM payments p
JOIN bookings b ON b.booking_id = p.booking_id
JOIN rooms r    ON r.room_id = b.room_id
WHERE p.created_at >= ? AND p.created_at < ?
GROUP BY r.room_name
ORDER BY revenue DESC
`
	err := r.db.WithContext(ctx).Raw(q, from, to).Scan(&rows).Error
	return rows, err
}

func (r *DashboardRepository) PaymentStatusBreakdown(ctx context.Context, from, to time.Time) ([]PaymentStatusRow, error) {
	var rows []PaymentStatusRow
	q := `
SELECT status,
       COUNT(1)                                          AS count,
       COALESCE(SUM(bill_amount), 0)                     AS total_bill_amount,
       COALESCE(SUM(bill_paid_amount), 0)                AS paid_amount,
       COALESCE(SUM(bill_amount - bill_paid_amount), 0)  AS pending_amount
FROM payments
WHERE created_at >= ? AND created_at < ?
GROUP BY status
`
	err := r.db.WithContext(ctx).Raw(q, from, to).Scan(&rows).Error
	return rows, err
}

// OccupiedRoomNights counts booked nights in [from, to) across all
// non-cancelled bookings, clamped to the window.
func (r *DashboardRepository) OccupiedRoomNights(ctx context.Context, from, to time.Time) (int64, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.BookingCancelled).
		Where("check_in < ? AND check_out > ?", to, from).
		Find(&bookings).Error
	if err != nil {
		return 0, err
	}

	var nights int64
	for _, b := range bookings {
		start, end := b.CheckIn, b.CheckOut
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if d := int64(end.Sub(start).Hours() / 24); d > 0 {
			nights += d
		}
	}
	return nights, nil
}

func (r *DashboardRepository) TotalRoomCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Room{}).
		Select("COALESCE(SUM(total_rooms), 0)").
		Scan(&total).Error
	return total, err
}

func (r *DashboardRepository) CountPayments(ctx context.Context, from, to time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&cnt).Error
	return cnt, err
}
