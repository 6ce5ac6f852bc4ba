package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, identity *Identity) error
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Identity, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *Session) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	Revoke(ctx context.Context, id snowflake.ID) error
	Touch(ctx context.Context, id snowflake.ID) error
}
