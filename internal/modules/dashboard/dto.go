package dashboard

import "hoteldesk/internal/repository"

type KPIs struct {
	TotalUsers       int64   `json:"totalUsers"`
	NewUsersToday    int64   `json:"newUsersToday"`
	TodayBookings    int64   `json:"todayBookings"`
	TodayCheckIn     int     `json:"todayCheckIn"`
	TodayCheckOut    int     `json:"todayCheckOut"`
	UpcomingBookings int     `json:"upcomingBookings"`
	TodayRevenue     float64 `json:"todayRevenue"`
}

type HourlyBucket struct {
	Hour  string `json:"hour"`
	Count int64  `json:"count"`
}

type Charts struct {
	BookingStatus  []repository.StatusCount `json:"bookingStatus"`
	HourlyBookings []HourlyBucket           `json:"hourlyBookings"`
}

type Summary struct {
	KPIs   KPIs   `json:"kpis"`
	Charts Charts `json:"charts"`
}

type ReportSummary struct {
	TotalRevenue  float64                       `json:"totalRevenue"`
	RevenueToday  float64                       `json:"revenueToday"`
	TotalBookings int64                         `json:"totalBookings"`
	Occupancy     float64                       `json:"occupancy"`
	ADR           float64                       `json:"adr"`
	RevPAR        float64                       `json:"revpar"`
	RevenueTrend  []repository.RevenuePoint     `json:"revenueTrend"`
	RevenueByRoom []repository.RoomRevenue      `json:"revenueByRoom"`
	PaymentStatus []repository.PaymentStatusRow `json:"paymentStatus"`
}
