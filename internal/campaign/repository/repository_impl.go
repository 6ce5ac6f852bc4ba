package repository

import (
	"context"
	"errors"

	"github.com/raqamly/console/internal/campaign/domain"
	"github.com/raqamly/console/pkg/db"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New builds the campaign repository over the on-device store and ensures
// its schema exists.
func New(local *db.Local) (domain.Repository, error) {
	if err := local.AutoMigrate(&domain.Campaign{}); err != nil {
		return nil, err
	}
	return &repo{db: local.DB}, nil
}

func (r *repo) Create(ctx context.Context, campaign *domain.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *repo) FindByID(ctx context.Context, id string) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *repo) ListByProduct(ctx context.Context, productID uint) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}
