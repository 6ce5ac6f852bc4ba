package domain

import "context"

type Repository interface {
	Create(ctx context.Context, campaign *Campaign) error
	FindByID(ctx context.Context, id string) (*Campaign, error)
	ListByProduct(ctx context.Context, productID uint) ([]Campaign, error)
}
