package domain

import (
	"context"
	"time"
)

type Service interface {
	CreateIdentity(ctx context.Context, req CreateIdentityRequest) (*Identity, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*Session, error)
}

type CreateIdentityRequest struct {
	Email    string
	Password string
}

type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	Identity  *Identity
	RawToken  string
	ExpiresAt time.Time
}
