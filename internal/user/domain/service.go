package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Get(ctx context.Context, id snowflake.ID) (*User, error)
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateUserRequest) (*User, error)
}

type CreateUserRequest struct {
	ID           snowflake.ID
	Email        string
	Name         string
	BusinessName string
}

// UpdateUserRequest carries the editable profile fields. Nil means leave the
// field as is.
type UpdateUserRequest struct {
	Name         *string
	BusinessName *string
}
