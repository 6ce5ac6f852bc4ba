package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id snowflake.ID) (*Product, error)
	ListByUser(ctx context.Context, userID snowflake.ID) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id snowflake.ID) error
}
