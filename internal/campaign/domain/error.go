package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("campaign not found")
	ErrInvalidPlatform = errors.New("unsupported campaign platform")
	ErrEmptyContent    = errors.New("campaign content is empty")

	// ErrGeneration wraps provider failures during text generation.
	ErrGeneration = errors.New("campaign generation failed")

	// ErrSuperseded is returned when a newer generation request for the same
	// session replaced this one mid-flight.
	ErrSuperseded = errors.New("campaign generation superseded")
)

func GenerationError(err error) error {
	return fmt.Errorf("%w: %v", ErrGeneration, err)
}
