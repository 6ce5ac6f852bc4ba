package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Notify(ctx context.Context, userID snowflake.ID, req NotifyRequest) (*Notification, error)
	List(ctx context.Context, userID snowflake.ID) ([]Notification, error)
}

type NotifyRequest struct {
	// Type defaults to TypeMessage when empty.
	Type    string `json:"type"`
	Content string `json:"content"`
}
