package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Product is a catalog entry owned by a single user.
type Product struct {
	ID          snowflake.ID   `json:"id" gorm:"primaryKey"`
	UserID      snowflake.ID   `json:"user_id" gorm:"index:ix_products_user_created,priority:1"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	ImageURL    string         `json:"image_url,omitempty"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index:ix_products_user_created,priority:2,sort:desc"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
