package catalog

import "errors"

var (
	ErrNotFound     = errors.New("room not found")
	ErrInvalidPrice = errors.New("invalid room price")
)
