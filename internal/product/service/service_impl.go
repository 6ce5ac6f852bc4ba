package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/raqamly/console/internal/product/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Service struct {
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(log *zap.Logger, repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &Service{
		log:   log.Named("product.service"),
		repo:  repo,
		genID: genID,
	}
}

func (s *Service) Create(ctx context.Context, userID snowflake.ID, req domain.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	tags, err := encodeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          s.genID.Generate(),
		UserID:      userID,
		Name:        name,
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
	return product, nil
}

func (s *Service) Get(ctx context.Context, userID, id snowflake.ID) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]domain.Product, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id snowflake.ID, req domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		product.Name = name
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	if req.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, domain.ErrInvalidPrice
		}
		product.Price = *req.Price
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
	return product, nil
}

// Delete removes the product. Deleting an id the user does not own, or one
// that is already gone, is a no-op.
func (s *Service) Delete(ctx context.Context, userID, id snowflake.ID) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil
		}
		return err
	}
	if product.UserID != userID {
		return nil
	}
	return s.repo.Delete(ctx, id)
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
