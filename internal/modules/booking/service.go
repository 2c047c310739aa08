package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/pricing"
)

const (
	dateLayout      = "2006-01-02"
	bookingCurrency = "INR"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	users    UserRepository
	offers   OfferRepository
	payments PaymentRepository
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	users UserRepository,
	offers OfferRepository,
	payments PaymentRepository,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		offers:   offers,
		payments: payments,
	}
}

// CheckAvailability reports whether the room has a free unit for every
// night of [checkIn, checkOut). Room categories hold TotalRooms
// physical units; a category with no configured count is treated as a
// single room. The signature doubles as the wizard's availability gate.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut string) (bool, string, error) {
	ci, co, err := parseStayDates(checkIn, checkOut)
	if err != nil {
		return false, "", err
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, "", ErrRoomNotFound
		}
		return false, "", err
	}

	return s.roomFree(ctx, room, ci, co, "")
}

func (s *Service) roomFree(ctx context.Context, room *domain.Room, ci, co time.Time, excludeBookingID string) (bool, string, error) {
	overlapping, err := s.bookings.CountOverlapping(ctx, room.ID, ci, co, excludeBookingID)
	if err != nil {
		return false, "", err
	}

	capacity := int64(room.TotalRooms)
	if capacity < 1 {
		capacity = 1
	}
	if overlapping >= capacity {
		msg := fmt.Sprintf("%s is not available for the selected dates", room.RoomName)
		return false, msg, nil
	}
	return true, "", nil
}

// CreateBooking resolves the guest, re-verifies availability, prices
// the stay through the offer engine and records the booking together
// with its pending payment.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	ci, co, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if req.Adults < 1 || req.Children < 0 {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	user, err := s.resolveGuest(ctx, req)
	if err != nil {
		return nil, err
	}

	free, _, err := s.roomFree(ctx, room, ci, co, "")
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrNotAvailable
	}

	quote, err := s.quoteStay(ctx, room, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		BookingID:   uuid.NewString(),
		RoomID:      room.ID,
		UserID:      user.ID,
		CheckIn:     ci,
		CheckOut:    co,
		Adults:      req.Adults,
		Children:    req.Children,
		GuestsTotal: req.Adults + req.Children,
		TotalPrice:  quote.Total,
		Status:      domain.BookingBooked,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrOverbooking
		}
		return nil, err
	}

	payment := &domain.Payment{
		PaymentID:  uuid.NewString(),
		UserID:     user.ID,
		BookingID:  b.BookingID,
		Method:     domain.PaymentMethod(req.PaymentMethod),
		Status:     domain.PaymentPending,
		Currency:   bookingCurrency,
		BillAmount: quote.Total,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	b.User = user
	b.Room = room
	return b, nil
}

// RescheduleBooking moves an existing stay to a new room and/or dates.
// The availability check excludes the booking itself and the total is
// recomputed against the offers valid for the new dates.
func (s *Service) RescheduleBooking(ctx context.Context, bookingID string, req RescheduleBookingRequest) (*domain.Booking, error) {
	ci, co, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if req.Adults < 1 || req.Children < 0 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCheckedOut {
		return nil, ErrInvalidStatusTransition
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	free, _, err := s.roomFree(ctx, room, ci, co, b.BookingID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrNotAvailable
	}

	quote, err := s.quoteStay(ctx, room, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	// contact details ride along with a reschedule
	if b.User != nil {
		b.User.Name = strings.TrimSpace(req.GuestName)
		b.User.Email = strings.TrimSpace(req.GuestEmail)
		b.User.WhatsappNumber = strings.TrimSpace(req.WhatsappNumber)
		if err := s.users.Update(ctx, b.User); err != nil {
			return nil, err
		}
	}

	b.RoomID = room.ID
	b.Room = room
	b.CheckIn = ci
	b.CheckOut = co
	b.Adults = req.Adults
	b.Children = req.Children
	b.GuestsTotal = req.Adults + req.Children
	b.TotalPrice = quote.Total

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus enforces the stay lifecycle:
// booked -> checked_in -> checked_out, with cancellation allowed only
// before check-in.
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !validTransition(b.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	return s.bookings.GetByBookingID(ctx, bookingID)
}

func validTransition(from, to domain.BookingStatus) bool {
	switch from {
	case domain.BookingBooked:
		return to == domain.BookingCheckedIn || to == domain.BookingCancelled
	case domain.BookingCheckedIn:
		return to == domain.BookingCheckedOut
	default:
		return false
	}
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetUpcoming(ctx context.Context, from, to *time.Time) ([]domain.Booking, error) {
	return s.bookings.GetUpcoming(ctx, from, to)
}

func (s *Service) GetTodayCheckIns(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetTodayCheckIns(ctx)
}

func (s *Service) GetTodayCheckOuts(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetTodayCheckOuts(ctx)
}

// QuoteStay prices a prospective stay for display in the wizard.
func (s *Service) QuoteStay(ctx context.Context, roomID int64, checkIn, checkOut string) (pricing.PriceQuote, error) {
	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return pricing.PriceQuote{}, err
	}
	offers, err := s.offers.GetActive(ctx)
	if err != nil {
		return pricing.PriceQuote{}, err
	}
	return pricing.Quote(roomID, checkIn, checkOut, roomRates(rooms), offerRates(offers)), nil
}

func (s *Service) quoteStay(ctx context.Context, room *domain.Room, checkIn, checkOut string) (pricing.PriceQuote, error) {
	offers, err := s.offers.GetActiveByRoom(ctx, room.ID)
	if err != nil {
		return pricing.PriceQuote{}, err
	}
	return pricing.Quote(
		room.ID, checkIn, checkOut,
		roomRates([]domain.Room{*room}),
		offerRates(offers),
	), nil
}

func (s *Service) resolveGuest(ctx context.Context, req CreateBookingRequest) (*domain.User, error) {
	if req.UserID != nil {
		user, err := s.users.GetByID(ctx, *req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return user, nil
	}

	number := strings.TrimSpace(req.WhatsappNumber)
	user, err := s.users.GetByWhatsappNumber(ctx, number)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &domain.User{
		Name:           strings.TrimSpace(req.GuestName),
		Email:          strings.TrimSpace(req.GuestEmail),
		WhatsappNumber: number,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	co, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	if !co.After(ci) {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return ci, co, nil
}

func roomRates(rooms []domain.Room) []pricing.RoomRate {
	out := make([]pricing.RoomRate, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, pricing.RoomRate{
			RoomID:   r.ID,
			Price:    r.Price,
			RoomName: r.RoomName,
			RoomType: r.RoomType,
		})
	}
	return out
}

func offerRates(offers []domain.Offer) []pricing.OfferRate {
	out := make([]pricing.OfferRate, 0, len(offers))
	for _, o := range offers {
		out = append(out, pricing.OfferRate{
			RoomID:     o.RoomID,
			OfferPrice: o.OfferPrice,
			StartDate:  o.StartDate,
			EndDate:    o.EndDate,
			IsActive:   o.IsActive,
		})
	}
	return out
}
