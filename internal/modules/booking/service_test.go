package booking

import (
	"context"
	"testing"
	"time"

	"hoteldesk/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID string) (int64, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut, excludeBookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetUpcoming(ctx context.Context, from, to *time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetTodayCheckIns(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetTodayCheckOuts(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 501
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByWhatsappNumber(ctx context.Context, number string) (*domain.User, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) GetActiveByRoom(ctx context.Context, roomID int64) ([]domain.Offer, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetActive(ctx context.Context) ([]domain.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID string) ([]domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func newTestService() (*Service, *MockBookingRepository, *MockRoomRepository, *MockUserRepository, *MockOfferRepository, *MockPaymentRepository) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	users := new(MockUserRepository)
	offers := new(MockOfferRepository)
	payments := new(MockPaymentRepository)
	svc := NewService(bookings, rooms, users, offers, payments)
	return svc, bookings, rooms, users, offers, payments
}

func strPtr(s string) *string { return &s }

var deluxeRoom = &domain.Room{
	ID:         2,
	RoomName:   "Deluxe Suite",
	RoomType:   "deluxe",
	TotalRooms: 3,
	Price:      "2000",
}

func TestCheckAvailability_Free(t *testing.T) {
	svc, bookings, rooms, _, _, _ := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(deluxeRoom, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), mock.Anything, mock.Anything, "").
		Return(int64(2), nil)

	free, msg, err := svc.CheckAvailability(context.Background(), 2, "2025-06-10", "2025-06-12")

	assert.NoError(t, err)
	assert.True(t, free)
	assert.Empty(t, msg)
}

func TestCheckAvailability_AtCapacity(t *testing.T) {
	svc, bookings, rooms, _, _, _ := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(deluxeRoom, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), mock.Anything, mock.Anything, "").
		Return(int64(3), nil)

	free, msg, err := svc.CheckAvailability(context.Background(), 2, "2025-06-10", "2025-06-12")

	assert.NoError(t, err)
	assert.False(t, free)
	assert.Equal(t, "Deluxe Suite is not available for the selected dates", msg)
}

func TestCheckAvailability_ZeroTotalRoomsTreatedAsSingle(t *testing.T) {
	svc, bookings, rooms, _, _, _ := newTestService()

	room := &domain.Room{ID: 5, RoomName: "Penthouse", Price: "9000"}
	rooms.On("GetByID", mock.Anything, int64(5)).Return(room, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(5), mock.Anything, mock.Anything, "").
		Return(int64(1), nil)

	free, _, err := svc.CheckAvailability(context.Background(), 5, "2025-06-10", "2025-06-12")

	assert.NoError(t, err)
	assert.False(t, free)
}

func TestCheckAvailability_UnknownRoom(t *testing.T) {
	svc, _, rooms, _, _, _ := newTestService()

	rooms.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.CheckAvailability(context.Background(), 42, "2025-06-10", "2025-06-12")

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCheckAvailability_BadDates(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, _, err := svc.CheckAvailability(context.Background(), 2, "2025-06-12", "2025-06-10")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBooking_NewGuestWithOffer(t *testing.T) {
	svc, bookings, rooms, users, offers, payments := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(deluxeRoom, nil)
	users.On("GetByWhatsappNumber", mock.Anything, "+919876543210").
		Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), mock.Anything, mock.Anything, "").
		Return(int64(0), nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{
		{
			ID:         7,
			RoomID:     2,
			OfferPrice: strPtr("1500"),
			StartDate:  strPtr("2025-06-01"),
			EndDate:    strPtr("2025-06-30"),
			IsActive:   true,
		},
	}, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:         2,
		CheckIn:        "2025-06-10",
		CheckOut:       "2025-06-12",
		GuestName:      "Asha Verma",
		GuestEmail:     "asha@example.com",
		WhatsappNumber: "+919876543210",
		Adults:         2,
		Children:       1,
		PaymentMethod:  "online",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, b.BookingID)
	assert.Equal(t, 3000.0, b.TotalPrice) // 2 nights at the offer rate
	assert.Equal(t, domain.BookingBooked, b.Status)
	assert.Equal(t, 3, b.GuestsTotal)
	assert.Equal(t, int64(501), b.UserID)

	payments.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.BookingID == b.BookingID &&
			p.Status == domain.PaymentPending &&
			p.Method == domain.PaymentOnline &&
			p.BillAmount == 3000.0 &&
			p.Currency == "INR"
	}))
}

func TestCreateBooking_ExistingGuestByWhatsapp(t *testing.T) {
	svc, bookings, rooms, users, offers, payments := newTestService()

	existing := &domain.User{ID: 12, Name: "Ravi", WhatsappNumber: "+919876543210"}
	rooms.On("GetByID", mock.Anything, int64(2)).Return(deluxeRoom, nil)
	users.On("GetByWhatsappNumber", mock.Anything, "+919876543210").Return(existing, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), mock.Anything, mock.Anything, "").
		Return(int64(0), nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{}, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:         2,
		CheckIn:        "2025-06-10",
		CheckOut:       "2025-06-12",
		GuestName:      "Ravi",
		WhatsappNumber: "+919876543210",
		Adults:         1,
		PaymentMethod:  "offline",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), b.UserID)
	assert.Equal(t, 4000.0, b.TotalPrice) // base rate, no offer
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_SelectedUserNotFound(t *testing.T) {
	svc, _, rooms, users, _, _ := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(deluxeRoom, nil)
	users.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	userID := int64(77)
	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:         2,
		CheckIn:        "2025-06-10",
		CheckOut:       "2025-06-12",
		UserID:         &userID,
		GuestName:      "Ghost",
		WhatsappNumber: "+919876543210",
		Adults:         1,
		PaymentMethod:  "online",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateBooking_RoomFull(t *testing.T) {
	svc, bookings, rooms, users, _, _ := newTestService()

	existing := &domain.User{ID: 12, WhatsappNumber: "+919876543210"}
	rooms.On("GetByID", mock.Anything, int64(2)).Return(deluxeRoom, nil)
	users.On("GetByWhatsappNumber", mock.Anything, "+919876543210").Return(existing, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), mock.Anything, mock.Anything, "").
		Return(int64(3), nil)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:         2,
		CheckIn:        "2025-06-10",
		CheckOut:       "2025-06-12",
		GuestName:      "Ravi",
		WhatsappNumber: "+919876543210",
		Adults:         1,
		PaymentMethod:  "online",
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_UniqueViolationMapsToOverbooking(t *testing.T) {
	svc, bookings, rooms, users, offers, _ := newTestService()

	existing := &domain.User{ID: 12, WhatsappNumber: "+919876543210"}
	rooms.On("GetByID", mock.Anything, int64(2)).Return(deluxeRoom, nil)
	users.On("GetByWhatsappNumber", mock.Anything, "+919876543210").Return(existing, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), mock.Anything, mock.Anything, "").
		Return(int64(0), nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{}, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(&pgconn.PgError{Code: "23505"})

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:         2,
		CheckIn:        "2025-06-10",
		CheckOut:       "2025-06-12",
		GuestName:      "Ravi",
		WhatsappNumber: "+919876543210",
		Adults:         1,
		PaymentMethod:  "online",
	})

	assert.ErrorIs(t, err, ErrOverbooking)
}

func TestCreateBooking_ZeroAdults(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:         2,
		CheckIn:        "2025-06-10",
		CheckOut:       "2025-06-12",
		GuestName:      "Ravi",
		WhatsappNumber: "+919876543210",
		Adults:         0,
		PaymentMethod:  "online",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRescheduleBooking_ExcludesSelfFromOverlap(t *testing.T) {
	svc, bookings, rooms, users, offers, _ := newTestService()

	guest := &domain.User{ID: 12, Name: "Ravi", WhatsappNumber: "+919876543210"}
	current := &domain.Booking{
		ID:        1,
		BookingID: "bk-123",
		RoomID:    2,
		UserID:    12,
		Status:    domain.BookingBooked,
		User:      guest,
	}

	bookings.On("GetByBookingID", mock.Anything, "bk-123").Return(current, nil)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(deluxeRoom, nil)
	bookings.On("CountOverlapping", mock.Anything, int64(2), mock.Anything, mock.Anything, "bk-123").
		Return(int64(0), nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	bookings.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.RescheduleBooking(context.Background(), "bk-123", RescheduleBookingRequest{
		RoomID:         2,
		CheckIn:        "2025-07-01",
		CheckOut:       "2025-07-04",
		GuestName:      "Ravi Kumar",
		WhatsappNumber: "+919876543210",
		Adults:         2,
		PaymentMethod:  "online",
	})

	assert.NoError(t, err)
	assert.Equal(t, 6000.0, b.TotalPrice) // 3 nights at 2000
	assert.Equal(t, "Ravi Kumar", b.User.Name)
	bookings.AssertCalled(t, "CountOverlapping", mock.Anything, int64(2), mock.Anything, mock.Anything, "bk-123")
}

func TestRescheduleBooking_CancelledStayRejected(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	bookings.On("GetByBookingID", mock.Anything, "bk-123").Return(&domain.Booking{
		BookingID: "bk-123",
		Status:    domain.BookingCancelled,
	}, nil)

	_, err := svc.RescheduleBooking(context.Background(), "bk-123", RescheduleBookingRequest{
		RoomID:         2,
		CheckIn:        "2025-07-01",
		CheckOut:       "2025-07-04",
		GuestName:      "Ravi",
		WhatsappNumber: "+919876543210",
		Adults:         1,
		PaymentMethod:  "online",
	})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.BookingStatus
		to      domain.BookingStatus
		allowed bool
	}{
		{"check in a booked stay", domain.BookingBooked, domain.BookingCheckedIn, true},
		{"cancel a booked stay", domain.BookingBooked, domain.BookingCancelled, true},
		{"check out after check in", domain.BookingCheckedIn, domain.BookingCheckedOut, true},
		{"cancel after check in", domain.BookingCheckedIn, domain.BookingCancelled, false},
		{"skip straight to checked out", domain.BookingBooked, domain.BookingCheckedOut, false},
		{"revive a cancelled stay", domain.BookingCancelled, domain.BookingBooked, false},
		{"re-book a checked out stay", domain.BookingCheckedOut, domain.BookingBooked, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, bookings, _, _, _, _ := newTestService()

			bookings.On("GetByBookingID", mock.Anything, "bk-9").Return(&domain.Booking{
				BookingID: "bk-9",
				Status:    tc.from,
			}, nil)
			if tc.allowed {
				bookings.On("UpdateStatus", mock.Anything, "bk-9", tc.to).Return(nil)
			}

			_, err := svc.UpdateStatus(context.Background(), "bk-9", tc.to)

			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
				bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	bookings.On("GetByBookingID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.BookingCheckedIn)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuoteStay_MatchesRoomAndOffer(t *testing.T) {
	svc, _, rooms, _, offers, _ := newTestService()

	rooms.On("GetAll", mock.Anything).Return([]domain.Room{*deluxeRoom}, nil)
	offers.On("GetActive", mock.Anything).Return([]domain.Offer{
		{
			ID:         7,
			RoomID:     2,
			OfferPrice: strPtr("1500"),
			StartDate:  strPtr("2025-06-01"),
			EndDate:    strPtr("2025-06-30"),
			IsActive:   true,
		},
	}, nil)

	q, err := svc.QuoteStay(context.Background(), 2, "2025-06-10", "2025-06-12")

	assert.NoError(t, err)
	assert.Equal(t, 2, q.Nights)
	assert.True(t, q.IsOffer)
	assert.Equal(t, 3000.0, q.Total)
}
