package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByUser(ctx context.Context, userID snowflake.ID) ([]Notification, error)
}
