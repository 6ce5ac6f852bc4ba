package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
	"github.com/raqamly/console/internal/campaign/domain"
	"github.com/raqamly/console/internal/campaign/prompt"
	catalogdomain "github.com/raqamly/console/internal/catalog/domain"
	"github.com/raqamly/console/internal/config"
	"github.com/raqamly/console/internal/providers/textgen"
	"go.uber.org/zap"
)

type Service struct {
	log      *zap.Logger
	repo     domain.Repository
	catalog  catalogdomain.Service
	provider textgen.Provider
	prompts  *config.PromptConfigHolder

	exportDir string

	mu       sync.Mutex
	inflight map[string]*generation
}

type generation struct {
	cancel context.CancelFunc
}

func New(
	log *zap.Logger,
	repo domain.Repository,
	catalog catalogdomain.Service,
	provider textgen.Provider,
	prompts *config.PromptConfigHolder,
	cfg config.Config,
) domain.Service {
	return &Service{
		log:       log.Named("campaign.service"),
		repo:      repo,
		catalog:   catalog,
		provider:  provider,
		prompts:   prompts,
		exportDir: cfg.ExportDir,
		inflight:  make(map[string]*generation),
	}
}

func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Campaign, error) {
	platform, err := domain.NormalizePlatform(req.Platform)
	if err != nil {
		return nil, err
	}
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = domain.DefaultLanguage
	}

	product, err := s.catalog.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	genCtx, cleanup := s.claim(ctx, req.SessionKey)
	defer cleanup()

	content, err := s.provider.Complete(genCtx, prompt.Build(s.prompts.Get(), product, platform, language))
	if err != nil {
		if genCtx.Err() == context.Canceled && ctx.Err() == nil {
			return nil, domain.ErrSuperseded
		}
		if errors.Is(err, textgen.ErrNoCredential) {
			return nil, err
		}
		return nil, domain.GenerationError(err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, domain.GenerationError(domain.ErrEmptyContent)
	}

	return &domain.Campaign{
		ID:        ulid.Make().String(),
		ProductID: product.ID,
		Platform:  platform,
		Language:  language,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// claim registers a generation for the session key, cancelling any request
// still in flight for the same key.
func (s *Service) claim(ctx context.Context, sessionKey string) (context.Context, func()) {
	genCtx, cancel := context.WithCancel(ctx)
	if sessionKey == "" {
		return genCtx, cancel
	}

	gen := &generation{cancel: cancel}

	s.mu.Lock()
	if prev, ok := s.inflight[sessionKey]; ok {
		prev.cancel()
	}
	s.inflight[sessionKey] = gen
	s.mu.Unlock()

	return genCtx, func() {
		s.mu.Lock()
		// only clear the slot if a newer request has not taken it
		if s.inflight[sessionKey] == gen {
			delete(s.inflight, sessionKey)
		}
		s.mu.Unlock()
		cancel()
	}
}

func (s *Service) Save(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if strings.TrimSpace(campaign.Content) == "" {
		return nil, domain.ErrEmptyContent
	}
	platform, err := domain.NormalizePlatform(campaign.Platform)
	if err != nil {
		return nil, err
	}
	campaign.Platform = platform

	if campaign.ID == "" {
		campaign.ID = ulid.Make().String()
	}
	if campaign.Language == "" {
		campaign.Language = domain.DefaultLanguage
	}
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListByProduct(ctx context.Context, productID uint) ([]domain.Campaign, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// Export writes the campaign content to
// <exportDir>/campaign_<product>_<platform>.txt and returns the path.
func (s *Service) Export(ctx context.Context, id string) (string, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	product, err := s.catalog.Get(ctx, campaign.ProductID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("campaign_%s_%s.txt", slug.Make(product.Name), campaign.Platform)
	path := filepath.Join(s.exportDir, name)
	if err := os.WriteFile(path, []byte(campaign.Content), 0o644); err != nil {
		return "", err
	}

	s.log.Info("exported campaign",
		zap.String("campaign_id", campaign.ID),
		zap.String("path", path),
	)
	return path, nil
}
