package catalog

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"hoteldesk/internal/domain"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if !validPrice(req.Price) {
		return nil, ErrInvalidPrice
	}

	room := &domain.Room{
		RoomName:    req.RoomName,
		RoomType:    req.RoomType,
		RoomNumber:  req.RoomNumber,
		TotalRooms:  req.TotalRooms,
		Price:       req.Price,
		RoomSize:    req.RoomSize,
		Guests:      req.Guests,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Amenities:   req.Amenities,
	}
	if room.TotalRooms < 1 {
		room.TotalRooms = 1
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.RoomName != nil {
		room.RoomName = *req.RoomName
	}
	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.TotalRooms != nil && *req.TotalRooms > 0 {
		room.TotalRooms = *req.TotalRooms
	}
	if req.Price != nil {
		if !validPrice(*req.Price) {
			return nil, ErrInvalidPrice
		}
		room.Price = *req.Price
	}
	if req.RoomSize != nil {
		room.RoomSize = *req.RoomSize
	}
	if req.Guests != nil && *req.Guests > 0 {
		room.Guests = *req.Guests
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.ImageURLs != nil {
		room.ImageURLs = *req.ImageURLs
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.rooms.Delete(ctx, id)
}

// Prices are stored as decimal strings; they must still parse.
func validPrice(price string) bool {
	v, err := strconv.ParseFloat(price, 64)
	return err == nil && v >= 0
}
