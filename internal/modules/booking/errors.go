package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrRoomNotFound            = errors.New("room not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrNotFound                = errors.New("booking not found")
	ErrNotAvailable            = errors.New("room not available")
	ErrOverbooking             = errors.New("overbooking constraint violation")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
