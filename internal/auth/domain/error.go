package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrIdentityExists     = errors.New("identity already exists")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionRevoked     = errors.New("session revoked")
	ErrInvalidSession     = errors.New("invalid session")
)
