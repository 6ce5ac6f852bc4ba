package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/raqamly/console/internal/user/domain"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(log *zap.Logger, repo domain.Repository) domain.Service {
	return &Service{
		log:  log.Named("user.service"),
		repo: repo,
	}
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		ID:               req.ID,
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Name:             strings.TrimSpace(req.Name),
		BusinessName:     strings.TrimSpace(req.BusinessName),
		SubscriptionPlan: domain.DefaultSubscriptionPlan,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update modifies only the editable profile fields. Email, plan and id are
// immutable through this path.
func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateUserRequest) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.BusinessName != nil {
		user.BusinessName = strings.TrimSpace(*req.BusinessName)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
