package textgen

import (
	"context"
	"errors"
)

var (
	// ErrNoCredential means the API key is missing. It is checked before any
	// network call so a misconfigured deployment fails fast.
	ErrNoCredential = errors.New("text generation api key is not configured")

	ErrEmptyCompletion = errors.New("completion returned no choices")
)

// Provider produces marketing copy from a prompt.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
