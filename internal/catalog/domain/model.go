package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product is the on-device mirror of a catalog entry. IDs are local
// auto-increment values and carry no meaning outside this device.
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	ImageURL    string         `json:"image_url,omitempty"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Product) TableName() string {
	return "catalog_products"
}
