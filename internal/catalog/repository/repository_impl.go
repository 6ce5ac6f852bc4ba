package repository

import (
	"context"
	"errors"

	"github.com/raqamly/console/internal/catalog/domain"
	"github.com/raqamly/console/pkg/db"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New builds the catalog repository over the on-device store and ensures its
// schema exists.
func New(local *db.Local) (domain.Repository, error) {
	if err := local.AutoMigrate(&domain.Product{}); err != nil {
		return nil, domain.PersistenceError("migrate", err)
	}
	return &repo{db: local.DB}, nil
}

func (r *repo) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return domain.PersistenceError("create", err)
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.PersistenceError("find", err)
	}
	return &product, nil
}

func (r *repo) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	// insertion order, matching how the console renders the local mirror
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, domain.PersistenceError("list", err)
	}
	return products, nil
}

func (r *repo) Update(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return domain.PersistenceError("update", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{}).Error; err != nil {
		return domain.PersistenceError("delete", err)
	}
	return nil
}
