package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/raqamly/console/internal/auth/domain"
	authrepository "github.com/raqamly/console/internal/auth/repository"
	authservice "github.com/raqamly/console/internal/auth/service"
	"github.com/raqamly/console/internal/signup/domain"
	userdomain "github.com/raqamly/console/internal/user/domain"
	"github.com/raqamly/console/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, authdomain.Service) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&authdomain.Identity{}, &authdomain.Session{}, &userdomain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	authRepo, sessionRepo := authrepository.New(dbConn)
	authSvc := authservice.New(zap.NewNop(), authRepo, sessionRepo, node)

	return New(zap.NewNop(), dbConn, authSvc, node), authSvc
}

func TestSignupThenLogin(t *testing.T) {
	svc, authSvc := newTestService(t)

	result, err := svc.Signup(context.Background(), domain.SignupRequest{
		Email:        "eve@example.com",
		Password:     "strong-password",
		Name:         "Eve",
		BusinessName: "Eve Ceramics",
	})
	if err != nil {
		t.Fatalf("failed to sign up: %v", err)
	}
	if result.RawToken == "" {
		t.Fatal("expected session token")
	}
	if result.User.SubscriptionPlan != userdomain.DefaultSubscriptionPlan {
		t.Fatalf("expected plan %q, got %q", userdomain.DefaultSubscriptionPlan, result.User.SubscriptionPlan)
	}

	login, err := authSvc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "eve@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to login after signup: %v", err)
	}
	if login.Identity.ID != result.User.ID {
		t.Fatalf("expected identity %v to own profile %v", login.Identity.ID, result.User.ID)
	}
}

func TestSignupDuplicateEmailRollsBack(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Signup(context.Background(), domain.SignupRequest{
		Email:    "frank@example.com",
		Password: "strong-password",
		Name:     "Frank",
	}); err != nil {
		t.Fatalf("failed to sign up: %v", err)
	}

	_, err := svc.Signup(context.Background(), domain.SignupRequest{
		Email:    "frank@example.com",
		Password: "another-password",
		Name:     "Frank Again",
	})
	if err != authdomain.ErrIdentityExists {
		t.Fatalf("expected ErrIdentityExists, got %v", err)
	}
}
