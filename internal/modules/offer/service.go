package offer

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"hoteldesk/internal/domain"
)

const dateLayout = "2006-01-02"

type Service struct {
	offers OfferRepository
	rooms  RoomRepository
}

func NewService(offers OfferRepository, rooms RoomRepository) *Service {
	return &Service{offers: offers, rooms: rooms}
}

func (s *Service) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.GetAll(ctx)
}

func (s *Service) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) CreateOffer(ctx context.Context, req CreateOfferRequest) (*domain.Offer, error) {
	o := &domain.Offer{
		RoomID:          req.RoomID,
		Title:           strings.TrimSpace(req.Title),
		DiscountPercent: req.DiscountPercent,
		OfferPrice:      normalized(req.OfferPrice),
		StartDate:       normalized(req.StartDate),
		EndDate:         normalized(req.EndDate),
		IsActive:        true,
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.validate(o); err != nil {
		return nil, err
	}
	if _, err := s.rooms.GetByID(ctx, o.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if err := s.checkOverlap(ctx, o); err != nil {
		return nil, err
	}

	if err := s.offers.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) UpdateOffer(ctx context.Context, id int64, req UpdateOfferRequest) (*domain.Offer, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		o.Title = strings.TrimSpace(*req.Title)
	}
	if req.DiscountPercent != nil {
		o.DiscountPercent = *req.DiscountPercent
	}
	if req.OfferPrice != nil {
		o.OfferPrice = normalized(req.OfferPrice)
	}
	if req.StartDate != nil {
		o.StartDate = normalized(req.StartDate)
	}
	if req.EndDate != nil {
		o.EndDate = normalized(req.EndDate)
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.validate(o); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, o); err != nil {
		return nil, err
	}

	if err := s.offers.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) DeleteOffer(ctx context.Context, id int64) error {
	if _, err := s.offers.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.offers.Delete(ctx, id)
}

func (s *Service) validate(o *domain.Offer) error {
	if o.OfferPrice != nil {
		v, err := strconv.ParseFloat(*o.OfferPrice, 64)
		if err != nil || v < 0 {
			return ErrValidation
		}
	}
	if o.DiscountPercent < 0 || o.DiscountPercent > 100 {
		return ErrValidation
	}

	var start, end *time.Time
	if o.StartDate != nil {
		t, err := time.Parse(dateLayout, *o.StartDate)
		if err != nil {
			return ErrValidation
		}
		start = &t
	}
	if o.EndDate != nil {
		t, err := time.Parse(dateLayout, *o.EndDate)
		if err != nil {
			return ErrValidation
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return ErrValidation
	}
	return nil
}

// checkOverlap rejects an active offer whose validity window intersects
// another active offer for the same room. A missing start or end date
// makes the window open-ended, so it overlaps everything on that side.
func (s *Service) checkOverlap(ctx context.Context, o *domain.Offer) error {
	if !o.IsActive {
		return nil
	}

	existing, err := s.offers.GetActiveByRoom(ctx, o.RoomID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == o.ID {
			continue
		}
		if windowsOverlap(o.StartDate, o.EndDate, other.StartDate, other.EndDate) {
			return ErrOverlappingOffer
		}
	}
	return nil
}

func windowsOverlap(aStart, aEnd, bStart, bEnd *string) bool {
	return !dateBefore(aEnd, bStart) && !dateBefore(bEnd, aStart)
}

// dateBefore reports end < start for two optional date strings.
// A nil end or start means the window is unbounded on that side, so it
// can never be strictly before.
func dateBefore(end, start *string) bool {
	if end == nil || start == nil {
		return false
	}
	e, err1 := time.Parse(dateLayout, *end)
	st, err2 := time.Parse(dateLayout, *start)
	if err1 != nil || err2 != nil {
		return false
	}
	return e.Before(st)
}

func normalized(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
