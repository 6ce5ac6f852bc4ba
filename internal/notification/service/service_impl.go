package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/raqamly/console/internal/notification/domain"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(log *zap.Logger, repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &Service{
		log:   log.Named("notification.service"),
		repo:  repo,
		genID: genID,
	}
}

func (s *Service) Notify(ctx context.Context, userID snowflake.ID, req domain.NotifyRequest) (*domain.Notification, error) {
	kind := strings.TrimSpace(req.Type)
	if kind == "" {
		kind = domain.TypeMessage
	}
	if !domain.ValidType(kind) {
		return nil, domain.ErrInvalidType
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, domain.ErrInvalidContent
	}

	notification := &domain.Notification{
		ID:        s.genID.Generate(),
		UserID:    userID,
		Type:      kind,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}
