package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Create(ctx context.Context, userID snowflake.ID, req CreateProductRequest) (*Product, error)
	Get(ctx context.Context, userID, id snowflake.ID) (*Product, error)
	List(ctx context.Context, userID snowflake.ID) ([]Product, error)
	Update(ctx context.Context, userID, id snowflake.ID, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, userID, id snowflake.ID) error
}

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

// UpdateProductRequest carries a partial update. Nil fields are untouched.
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Tags        *[]string `json:"tags"`
}
