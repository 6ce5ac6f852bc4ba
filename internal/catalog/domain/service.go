package domain

import "context"

type Service interface {
	Add(ctx context.Context, req AddProductRequest) (*Product, error)
	Get(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id uint, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id uint) error

	// Watch returns a live query over the catalog. The subscription receives
	// the current snapshot immediately and a fresh one after every mutation.
	Watch(ctx context.Context) (*Subscription, error)
}

type AddProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Tags        *[]string `json:"tags"`
}
