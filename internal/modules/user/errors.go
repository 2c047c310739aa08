package user

import "errors"

var (
	ErrNotFound        = errors.New("user not found")
	ErrDuplicateNumber = errors.New("whatsapp number already registered")
)
