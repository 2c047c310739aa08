package dashboard

import (
	"context"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

type Service struct {
	stats    DashboardRepository
	users    UserRepository
	bookings BookingRepository
	now      func() time.Time
}

func NewService(stats DashboardRepository, users UserRepository, bookings BookingRepository) *Service {
	return &Service{
		stats:    stats,
		users:    users,
		bookings: bookings,
		now:      time.Now,
	}
}

// Summary assembles the KPI cards and charts for the landing screen.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	dayStart, dayEnd := s.today()

	totalUsers, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	newUsersToday, err := s.users.CountCreatedSince(ctx, dayStart.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	todayBookings, err := s.stats.CountBookingsCreatedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	checkIns, err := s.bookings.GetTodayCheckIns(ctx)
	if err != nil {
		return nil, err
	}
	checkOuts, err := s.bookings.GetTodayCheckOuts(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.bookings.GetUpcoming(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	todayRevenue, err := s.stats.PaidAmountBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.stats.BookingStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	creationTimes, err := s.stats.BookingCreationTimes(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &Summary{
		KPIs: KPIs{
			TotalUsers:       totalUsers,
			NewUsersToday:    newUsersToday,
			TodayBookings:    todayBookings,
			TodayCheckIn:     len(checkIns),
			TodayCheckOut:    len(checkOuts),
			UpcomingBookings: len(upcoming),
			TodayRevenue:     round2(todayRevenue),
		},
		Charts: Charts{
			BookingStatus:  statusCounts,
			HourlyBookings: hourlyBuckets(creationTimes),
		},
	}, nil
}

// Report aggregates revenue and occupancy figures over [from, to].
func (s *Service) Report(ctx context.Context, from, to time.Time) (*ReportSummary, error) {
	// the window includes the whole "to" day
	windowEnd := to.AddDate(0, 0, 1)
	dayStart, dayEnd := s.today()

	totalRevenue, err := s.stats.PaidAmountBetween(ctx, from, windowEnd)
	if err != nil {
		return nil, err
	}
	revenueToday, err := s.stats.PaidAmountBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.stats.CountBookingsCreatedBetween(ctx, from, windowEnd)
	if err != nil {
		return nil, err
	}
	occupiedNights, err := s.stats.OccupiedRoomNights(ctx, from, windowEnd)
	if err != nil {
		return nil, err
	}
	roomCount, err := s.stats.TotalRoomCount(ctx)
	if err != nil {
		return nil, err
	}
	trend, err := s.stats.RevenueTrend(ctx, from, windowEnd)
	if err != nil {
		return nil, err
	}
	byRoom, err := s.stats.RevenueByRoom(ctx, from, windowEnd)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := s.stats.PaymentStatusBreakdown(ctx, from, windowEnd)
	if err != nil {
		return nil, err
	}

	nightsInWindow := int64(windowEnd.Sub(from).Hours() / 24)
	availableNights := roomCount * nightsInWindow

	var occupancy, adr, revpar float64
	if availableNights > 0 {
		occupancy = float64(occupiedNights) / float64(availableNights) * 100
		revpar = totalRevenue / float64(availableNights)
	}
	if occupiedNights > 0 {
		adr = totalRevenue / float64(occupiedNights)
	}

	return &ReportSummary{
		TotalRevenue:  round2(totalRevenue),
		RevenueToday:  round2(revenueToday),
		TotalBookings: totalBookings,
		Occupancy:     round2(occupancy),
		ADR:           round2(adr),
		RevPAR:        round2(revpar),
		RevenueTrend:  trend,
		RevenueByRoom: byRoom,
		PaymentStatus: paymentStatus,
	}, nil
}

func (s *Service) today() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// hourlyBuckets groups creation timestamps into 24 labelled hour slots,
// "03:00 PM" style.
func hourlyBuckets(times []time.Time) []HourlyBucket {
	counts := make(map[int]int64, 24)
	for _, t := range times {
		counts[t.Hour()]++
	}

	buckets := make([]HourlyBucket, 0, 24)
	for h := 0; h < 24; h++ {
		label := time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format("03:04 PM")
		buckets = append(buckets, HourlyBucket{Hour: label, Count: counts[h]})
	}
	return buckets
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
