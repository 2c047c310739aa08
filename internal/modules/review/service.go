package review

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoteldesk/internal/domain"
)

type CreateReviewRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	RoomID  int64  `json:"room_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type Service struct {
	reviews ReviewRepository
	users   UserRepository
	rooms   RoomRepository
}

func NewService(reviews ReviewRepository, users UserRepository, rooms RoomRepository) *Service {
	return &Service{reviews: reviews, users: users, rooms: rooms}
}

func (s *Service) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.GetAll(ctx)
}

func (s *Service) CreateReview(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		UserID: req.UserID,
		RoomID: req.RoomID,
		Rating: req.Rating,
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		rv.Comment = &comment
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}
