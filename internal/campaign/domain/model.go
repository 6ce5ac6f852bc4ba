package domain

import (
	"strings"
	"time"
)

// Platforms a campaign can target.
const (
	PlatformFacebook  = "Facebook"
	PlatformInstagram = "Instagram"
	PlatformTwitter   = "Twitter"
)

// DefaultLanguage is used when the caller does not pick one.
const DefaultLanguage = "english"

// Campaign is a generated piece of marketing copy, stored on-device next to
// the catalog it was written for.
type Campaign struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"index"`
	Platform  string    `json:"platform"`
	Language  string    `json:"language"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// NormalizePlatform maps user input onto the supported platform set.
func NormalizePlatform(platform string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "facebook":
		return PlatformFacebook, nil
	case "instagram":
		return PlatformInstagram, nil
	case "twitter":
		return PlatformTwitter, nil
	default:
		return "", ErrInvalidPlatform
	}
}
