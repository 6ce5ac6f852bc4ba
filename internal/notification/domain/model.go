package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Notification kinds shown in the console feed.
const (
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeMessage = "message"
)

// Notification is a feed entry shown to one user. The feed is read-only for
// clients; entries are produced by the backend.
type Notification struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	UserID    snowflake.ID `json:"user_id" gorm:"index:ix_notifications_user_created,priority:1"`
	Type      string       `json:"type"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at" gorm:"index:ix_notifications_user_created,priority:2,sort:desc"`
}

func (Notification) TableName() string {
	return "notifications"
}

// ValidType reports whether t is one of the feed entry kinds.
func ValidType(t string) bool {
	switch t {
	case TypeSuccess, TypeWarning, TypeMessage:
		return true
	}
	return false
}
