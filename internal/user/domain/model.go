package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// DefaultSubscriptionPlan is assigned to every new profile.
const DefaultSubscriptionPlan = "Free"

// User is the marketing profile attached to an identity. The row shares its
// primary key with the owning identity.
type User struct {
	ID               snowflake.ID `json:"id" gorm:"primaryKey"`
	Email            string       `json:"email" gorm:"uniqueIndex"`
	Name             string       `json:"name"`
	BusinessName     string       `json:"business_name"`
	SubscriptionPlan string       `json:"subscription_plan" gorm:"default:Free"`
	ProfilePicture   *string      `json:"profile_picture,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
