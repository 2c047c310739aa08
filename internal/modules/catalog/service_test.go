package catalog

import (
	"context"
	"testing"

	"hoteldesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 11
	}
	return args.Error(0)
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

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateRoom_DefaultsSingleUnit(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Room")).Return(nil)

	room, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		RoomName: "Garden View",
		RoomType: "standard",
		Price:    "1800.50",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), room.ID)
	assert.Equal(t, 1, room.TotalRooms)
	assert.Equal(t, "1800.50", room.Price)
}

func TestCreateRoom_RejectsBadPrice(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		RoomName: "Garden View",
		RoomType: "standard",
		Price:    "cheap",
	})

	assert.ErrorIs(t, err, ErrInvalidPrice)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRoom_RejectsNegativePrice(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		RoomName: "Garden View",
		RoomType: "standard",
		Price:    "-5",
	})

	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestUpdateRoom_PatchesOnlyProvidedFields(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	existing := &domain.Room{
		ID:         11,
		RoomName:   "Garden View",
		RoomType:   "standard",
		TotalRooms: 2,
		Price:      "1800",
		Guests:     2,
	}
	repo.On("GetByID", mock.Anything, int64(11)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Room")).Return(nil)

	newPrice := "2100"
	room, err := svc.UpdateRoom(context.Background(), 11, UpdateRoomRequest{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, "2100", room.Price)
	assert.Equal(t, "Garden View", room.RoomName)
	assert.Equal(t, 2, room.TotalRooms)
}

func TestUpdateRoom_NotFound(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateRoom(context.Background(), 99, UpdateRoomRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteRoom(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
