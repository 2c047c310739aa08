package offer

import "errors"

var (
	ErrNotFound         = errors.New("offer not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrValidation       = errors.New("invalid offer payload")
	ErrOverlappingOffer = errors.New("active offer overlaps an existing offer for this room")
)
