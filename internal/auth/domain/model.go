// Package domain contains core types for the auth service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Identity represents a login-capable account. Profile data lives in the
// users table and is joined by id.
type Identity struct {
	ID                  snowflake.ID `gorm:"primaryKey"`
	ExternalID          string       `gorm:"column:external_id;type:text;not null;uniqueIndex"`
	Email               string       `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash        *string      `gorm:"type:text"`
	LastPasswordChanged *time.Time   `gorm:"column:last_password_changed"`
	CreatedAt           time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Identity) TableName() string { return "identities" }

// Session represents a persisted login session.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	IdentityID       snowflake.ID `gorm:"column:identity_id;not null;index"`
	SessionTokenHash string       `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string       `gorm:"column:user_agent;type:text"`
	IPAddress        string       `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time    `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time   `gorm:"column:revoked_at"`
	CreatedAt        time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time    `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }
