package payment

import "errors"

var (
	ErrNotFound   = errors.New("payment not found")
	ErrOverpaid   = errors.New("paid amount exceeds bill amount")
	ErrValidation = errors.New("invalid payment payload")
)
