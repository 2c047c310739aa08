package offer

import (
	"context"
	"testing"

	"hoteldesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	args := m.Called(ctx, o)
	if o != nil {
		o.ID = 77
	}
	return args.Error(0)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetAll(ctx context.Context) ([]domain.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetActiveByRoom(ctx context.Context, roomID int64) ([]domain.Offer, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *domain.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func newTestService() (*Service, *MockOfferRepository, *MockRoomRepository) {
	offers := new(MockOfferRepository)
	rooms := new(MockRoomRepository)
	return NewService(offers, rooms), offers, rooms
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestCreateOffer_NoExistingOffers(t *testing.T) {
	svc, offers, rooms := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(&domain.Room{ID: 2}, nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{}, nil)
	offers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Offer")).Return(nil)

	o, err := svc.CreateOffer(context.Background(), CreateOfferRequest{
		RoomID:     2,
		Title:      "Summer Special",
		OfferPrice: strPtr("1500"),
		StartDate:  strPtr("2025-06-01"),
		EndDate:    strPtr("2025-06-30"),
	})

	assert.NoError(t, err)
	assert.True(t, o.IsActive)
	assert.Equal(t, int64(77), o.ID)
}

func TestCreateOffer_OverlappingWindowRejected(t *testing.T) {
	svc, offers, rooms := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(&domain.Room{ID: 2}, nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{
		{ID: 5, RoomID: 2, StartDate: strPtr("2025-06-15"), EndDate: strPtr("2025-07-15"), IsActive: true},
	}, nil)

	_, err := svc.CreateOffer(context.Background(), CreateOfferRequest{
		RoomID:     2,
		OfferPrice: strPtr("1500"),
		StartDate:  strPtr("2025-06-01"),
		EndDate:    strPtr("2025-06-30"),
	})

	assert.ErrorIs(t, err, ErrOverlappingOffer)
	offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOffer_OpenEndedOverlapsEverything(t *testing.T) {
	svc, offers, rooms := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(&domain.Room{ID: 2}, nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{
		{ID: 5, RoomID: 2, StartDate: strPtr("2025-12-01"), EndDate: strPtr("2025-12-31"), IsActive: true},
	}, nil)

	_, err := svc.CreateOffer(context.Background(), CreateOfferRequest{
		RoomID:     2,
		OfferPrice: strPtr("1500"),
	})

	assert.ErrorIs(t, err, ErrOverlappingOffer)
}

func TestCreateOffer_DisjointWindowsAllowed(t *testing.T) {
	svc, offers, rooms := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(&domain.Room{ID: 2}, nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{
		{ID: 5, RoomID: 2, StartDate: strPtr("2025-07-01"), EndDate: strPtr("2025-07-31"), IsActive: true},
	}, nil)
	offers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Offer")).Return(nil)

	_, err := svc.CreateOffer(context.Background(), CreateOfferRequest{
		RoomID:     2,
		OfferPrice: strPtr("1500"),
		StartDate:  strPtr("2025-06-01"),
		EndDate:    strPtr("2025-06-30"),
	})

	assert.NoError(t, err)
}

func TestCreateOffer_InactiveSkipsOverlapCheck(t *testing.T) {
	svc, offers, rooms := newTestService()

	rooms.On("GetByID", mock.Anything, int64(2)).Return(&domain.Room{ID: 2}, nil)
	offers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Offer")).Return(nil)

	_, err := svc.CreateOffer(context.Background(), CreateOfferRequest{
		RoomID:     2,
		OfferPrice: strPtr("1500"),
		IsActive:   boolPtr(false),
	})

	assert.NoError(t, err)
	offers.AssertNotCalled(t, "GetActiveByRoom", mock.Anything, mock.Anything)
}

func TestCreateOffer_UnknownRoom(t *testing.T) {
	svc, _, rooms := newTestService()

	rooms.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateOffer(context.Background(), CreateOfferRequest{
		RoomID:     42,
		OfferPrice: strPtr("1500"),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateOffer_BadPayloads(t *testing.T) {
	cases := []struct {
		name string
		req  CreateOfferRequest
	}{
		{"price not a number", CreateOfferRequest{RoomID: 2, OfferPrice: strPtr("deal")}},
		{"negative price", CreateOfferRequest{RoomID: 2, OfferPrice: strPtr("-10")}},
		{"malformed start date", CreateOfferRequest{RoomID: 2, StartDate: strPtr("June 1st")}},
		{"end before start", CreateOfferRequest{RoomID: 2, StartDate: strPtr("2025-06-30"), EndDate: strPtr("2025-06-01")}},
		{"discount over 100", CreateOfferRequest{RoomID: 2, DiscountPercent: 120}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newTestService()
			_, err := svc.CreateOffer(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateOffer_IgnoresItselfInOverlapCheck(t *testing.T) {
	svc, offers, _ := newTestService()

	existing := &domain.Offer{
		ID:         5,
		RoomID:     2,
		OfferPrice: strPtr("1500"),
		StartDate:  strPtr("2025-06-01"),
		EndDate:    strPtr("2025-06-30"),
		IsActive:   true,
	}
	offers.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{*existing}, nil)
	offers.On("Update", mock.Anything, mock.AnythingOfType("*domain.Offer")).Return(nil)

	o, err := svc.UpdateOffer(context.Background(), 5, UpdateOfferRequest{
		OfferPrice: strPtr("1400"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "1400", *o.OfferPrice)
}

func TestUpdateOffer_ReactivationChecksOverlap(t *testing.T) {
	svc, offers, _ := newTestService()

	offers.On("GetByID", mock.Anything, int64(5)).Return(&domain.Offer{
		ID:        5,
		RoomID:    2,
		StartDate: strPtr("2025-06-01"),
		EndDate:   strPtr("2025-06-30"),
		IsActive:  false,
	}, nil)
	offers.On("GetActiveByRoom", mock.Anything, int64(2)).Return([]domain.Offer{
		{ID: 9, RoomID: 2, StartDate: strPtr("2025-06-10"), EndDate: strPtr("2025-06-20"), IsActive: true},
	}, nil)

	_, err := svc.UpdateOffer(context.Background(), 5, UpdateOfferRequest{
		IsActive: boolPtr(true),
	})

	assert.ErrorIs(t, err, ErrOverlappingOffer)
}

func TestDeleteOffer_NotFound(t *testing.T) {
	svc, offers, _ := newTestService()

	offers.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteOffer(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}
