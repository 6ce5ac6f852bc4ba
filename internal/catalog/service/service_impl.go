package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/raqamly/console/internal/catalog/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Service struct {
	log  *zap.Logger
	repo domain.Repository
	feed *domain.Feed
}

func New(log *zap.Logger, repo domain.Repository) domain.Service {
	return &Service{
		log:  log.Named("catalog.service"),
		repo: repo,
		feed: domain.NewFeed(),
	}
}

// Add stores a new local entry. Field validation lives at the HTTP surface;
// this layer takes what it is given.
func (s *Service) Add(ctx context.Context, req domain.AddProductRequest) (*domain.Product, error) {
	tags, err := encodeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx)
	return product, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uint, req domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.Tags != nil {
		tags, err := encodeTags(*req.Tags)
		if err != nil {
			return nil, err
		}
		product.Tags = tags
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx)
	return product, nil
}

// Delete removes the local entry. Unknown ids are a no-op.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

func (s *Service) Watch(ctx context.Context) (*domain.Subscription, error) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sub := s.feed.Subscribe()
	sub.Seed(snapshot)
	return sub, nil
}

func encodeTags(tags []string) (datatypes.JSON, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *Service) publish(ctx context.Context) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn("failed to load catalog snapshot", zap.Error(err))
		return
	}
	s.feed.Publish(snapshot)
}
