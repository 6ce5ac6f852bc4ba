package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raqamly/console/internal/campaign/domain"
	"github.com/raqamly/console/internal/campaign/repository"
	catalogdomain "github.com/raqamly/console/internal/catalog/domain"
	catalogrepository "github.com/raqamly/console/internal/catalog/repository"
	catalogservice "github.com/raqamly/console/internal/catalog/service"
	"github.com/raqamly/console/internal/config"
	"github.com/raqamly/console/internal/providers/textgen"
	"github.com/raqamly/console/pkg/db"
	"go.uber.org/zap"
)

type fakeProvider struct {
	complete func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return f.complete(ctx, prompt)
}

func newTestService(t *testing.T, provider textgen.Provider) (domain.Service, catalogdomain.Service, string) {
	t.Helper()

	local, err := db.NewTestLocal()
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}

	catalogRepo, err := catalogrepository.New(local)
	if err != nil {
		t.Fatalf("failed to build catalog repository: %v", err)
	}
	catalogSvc := catalogservice.New(zap.NewNop(), catalogRepo)

	repo, err := repository.New(local)
	if err != nil {
		t.Fatalf("failed to build campaign repository: %v", err)
	}

	prompts, err := config.NewPromptConfigHolder()
	if err != nil {
		t.Fatalf("failed to build prompt config: %v", err)
	}

	exportDir := t.TempDir()
	svc := New(zap.NewNop(), repo, catalogSvc, provider, prompts, config.Config{ExportDir: exportDir})
	return svc, catalogSvc, exportDir
}

func addProduct(t *testing.T, catalog catalogdomain.Service) *catalogdomain.Product {
	t.Helper()
	product, err := catalog.Add(context.Background(), catalogdomain.AddProductRequest{
		Name:        "Ceramic Mug",
		Description: "Hand thrown stoneware mug",
		Price:       18.5,
	})
	if err != nil {
		t.Fatalf("failed to add product: %v", err)
	}
	return product
}

func TestGenerateBuildsPromptFromProduct(t *testing.T) {
	var gotPrompt string
	provider := &fakeProvider{complete: func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "Sip in style with our handmade mug!", nil
	}}
	svc, catalog, _ := newTestService(t, provider)
	product := addProduct(t, catalog)

	campaign, err := svc.Generate(context.Background(), domain.GenerateRequest{
		ProductID: product.ID,
		Platform:  "instagram",
	})
	if err != nil {
		t.Fatalf("failed to generate: %v", err)
	}

	if campaign.Platform != domain.PlatformInstagram {
		t.Fatalf("expected normalized platform, got %q", campaign.Platform)
	}
	if campaign.Language != domain.DefaultLanguage {
		t.Fatalf("expected default language, got %q", campaign.Language)
	}
	if campaign.ID == "" {
		t.Fatal("expected generated id")
	}
	if campaign.Content != "Sip in style with our handmade mug!" {
		t.Fatalf("unexpected content %q", campaign.Content)
	}
	if !strings.Contains(gotPrompt, "Ceramic Mug") || !strings.Contains(gotPrompt, "perfect for Instagram") {
		t.Fatalf("expected product facts in prompt, got %q", gotPrompt)
	}
	if !strings.HasSuffix(gotPrompt, "Write it in english.") {
		t.Fatalf("expected language directive, got %q", gotPrompt)
	}
}

func TestGenerateInvalidPlatform(t *testing.T) {
	svc, catalog, _ := newTestService(t, &fakeProvider{complete: func(context.Context, string) (string, error) {
		return "ok", nil
	}})
	product := addProduct(t, catalog)

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{
		ProductID: product.ID,
		Platform:  "myspace",
	})
	if err != domain.ErrInvalidPlatform {
		t.Fatalf("expected ErrInvalidPlatform, got %v", err)
	}
}

func TestGenerateMissingCredentialSurfaces(t *testing.T) {
	svc, catalog, _ := newTestService(t, textgen.NewOpenAIClient(textgen.OpenAIConfig{Model: "gpt-3.5-turbo"}))
	product := addProduct(t, catalog)

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{
		ProductID: product.ID,
		Platform:  "facebook",
	})
	if !errors.Is(err, textgen.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}

func TestGenerateProviderFailureWrapped(t *testing.T) {
	svc, catalog, _ := newTestService(t, &fakeProvider{complete: func(context.Context, string) (string, error) {
		return "", errors.New("upstream down")
	}})
	product := addProduct(t, catalog)

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{
		ProductID: product.ID,
		Platform:  "twitter",
	})
	if !errors.Is(err, domain.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestGenerateSupersedesInflight(t *testing.T) {
	started := make(chan struct{})
	provider := &fakeProvider{complete: func(ctx context.Context, prompt string) (string, error) {
		select {
		case started <- struct{}{}:
		default:
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "slow caption", nil
		}
	}}
	svc, catalog, _ := newTestService(t, provider)
	product := addProduct(t, catalog)

	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Generate(context.Background(), domain.GenerateRequest{
			SessionKey: "sess-1",
			ProductID:  product.ID,
			Platform:   "facebook",
		})
		firstErr <- err
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first generation never started")
	}

	provider.complete = func(ctx context.Context, prompt string) (string, error) {
		return "fresh caption", nil
	}
	campaign, err := svc.Generate(context.Background(), domain.GenerateRequest{
		SessionKey: "sess-1",
		ProductID:  product.ID,
		Platform:   "facebook",
	})
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}
	if campaign.Content != "fresh caption" {
		t.Fatalf("unexpected content %q", campaign.Content)
	}

	select {
	case err := <-firstErr:
		if err != domain.ErrSuperseded {
			t.Fatalf("expected ErrSuperseded, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("first generation never returned")
	}
}

func TestSaveAndExport(t *testing.T) {
	svc, catalog, exportDir := newTestService(t, &fakeProvider{complete: func(context.Context, string) (string, error) {
		return "Exactly this caption", nil
	}})
	product := addProduct(t, catalog)

	campaign, err := svc.Generate(context.Background(), domain.GenerateRequest{
		ProductID: product.ID,
		Platform:  "facebook",
	})
	if err != nil {
		t.Fatalf("failed to generate: %v", err)
	}

	saved, err := svc.Save(context.Background(), campaign)
	if err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	path, err := svc.Export(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}
	if filepath.Base(path) != "campaign_ceramic-mug_Facebook.txt" {
		t.Fatalf("unexpected export name %q", filepath.Base(path))
	}
	if filepath.Dir(path) != exportDir {
		t.Fatalf("expected export under %q, got %q", exportDir, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if string(content) != "Exactly this caption" {
		t.Fatalf("expected exact content bytes, got %q", string(content))
	}
}

func TestSaveRejectsEmptyContent(t *testing.T) {
	svc, _, _ := newTestService(t, &fakeProvider{complete: func(context.Context, string) (string, error) {
		return "ok", nil
	}})

	_, err := svc.Save(context.Background(), &domain.Campaign{
		Platform: "Facebook",
		Content:  "   ",
	})
	if err != domain.ErrEmptyContent {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}
