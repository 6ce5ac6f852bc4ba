package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	authdomain "github.com/raqamly/console/internal/auth/domain"
	"github.com/raqamly/console/internal/auth/repository"
	"github.com/raqamly/console/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) authdomain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&authdomain.Identity{}, &authdomain.Session{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repo, sessionRepo := repository.New(dbConn)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(zap.NewNop(), repo, sessionRepo, node)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	identity, err := svc.CreateIdentity(context.Background(), authdomain.CreateIdentityRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("failed to create identity: %v", err)
	}
	if identity == nil {
		t.Fatal("expected identity")
	}

	_, err = svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	if err != authdomain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCreateIdentityExternalIDUUID(t *testing.T) {
	svc := newTestService(t)

	identity, err := svc.CreateIdentity(context.Background(), authdomain.CreateIdentityRequest{
		Email:    "bob@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to create identity: %v", err)
	}
	if identity.ExternalID == "" {
		t.Fatalf("expected external id")
	}
	if _, err := uuid.Parse(identity.ExternalID); err != nil {
		t.Fatalf("expected external id UUID, got %v", err)
	}
}

func TestCreateIdentityDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateIdentity(context.Background(), authdomain.CreateIdentityRequest{
		Email:    "carol@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to create identity: %v", err)
	}

	_, err = svc.CreateIdentity(context.Background(), authdomain.CreateIdentityRequest{
		Email:    "carol@example.com",
		Password: "another-password",
	})
	if err != authdomain.ErrIdentityExists {
		t.Fatalf("expected ErrIdentityExists, got %v", err)
	}
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&authdomain.Identity{}, &authdomain.Session{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	repo, _ := repository.New(dbConn)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	// two concurrent signups can both pass the service's pre-check; the
	// repository maps the constraint violation the second insert hits
	first := &authdomain.Identity{ID: node.Generate(), ExternalID: uuid.NewString(), Email: "erin@example.com"}
	if err := repo.Create(context.Background(), first); err != nil {
		t.Fatalf("failed to create identity: %v", err)
	}

	second := &authdomain.Identity{ID: node.Generate(), ExternalID: uuid.NewString(), Email: "erin@example.com"}
	if err := repo.Create(context.Background(), second); err != authdomain.ErrIdentityExists {
		t.Fatalf("expected ErrIdentityExists, got %v", err)
	}
}

func TestAuthenticateLifecycle(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateIdentity(context.Background(), authdomain.CreateIdentityRequest{
		Email:    "dave@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to create identity: %v", err)
	}

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "dave@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	if result.RawToken == "" {
		t.Fatal("expected session token")
	}

	session, err := svc.Authenticate(context.Background(), result.RawToken)
	if err != nil {
		t.Fatalf("failed to authenticate: %v", err)
	}
	if session.IdentityID != result.Identity.ID {
		t.Fatalf("expected session for identity %v, got %v", result.Identity.ID, session.IdentityID)
	}

	if err := svc.Logout(context.Background(), result.RawToken); err != nil {
		t.Fatalf("failed to logout: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), result.RawToken); err != authdomain.ErrSessionRevoked {
		t.Fatalf("expected ErrSessionRevoked, got %v", err)
	}

	// logout on an already revoked token stays best-effort
	if err := svc.Logout(context.Background(), "unknown-token"); err != nil {
		t.Fatalf("expected nil for unknown token, got %v", err)
	}
}
