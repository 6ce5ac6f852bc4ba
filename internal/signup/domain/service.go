package domain

import (
	"context"
	"time"

	userdomain "github.com/raqamly/console/internal/user/domain"
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResult, error)
}

type SignupRequest struct {
	Email        string
	Password     string
	Name         string
	BusinessName string
	UserAgent    string
	IPAddress    string
}

// SignupResult carries the new profile and a freshly minted session so the
// caller lands signed in.
type SignupResult struct {
	User      *userdomain.User
	RawToken  string
	ExpiresAt time.Time
}
