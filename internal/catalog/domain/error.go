package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("catalog product not found")
	ErrInvalidName  = errors.New("catalog product name is required")
	ErrInvalidPrice = errors.New("catalog product price must not be negative")

	// ErrPersistence marks local store failures so callers can tell them
	// apart from validation errors.
	ErrPersistence = errors.New("catalog persistence failure")
)

func PersistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
