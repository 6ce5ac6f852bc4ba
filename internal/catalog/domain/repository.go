package domain

import "context"

type Repository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}
