package domain

import "errors"

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidName  = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price must not be negative")
)
