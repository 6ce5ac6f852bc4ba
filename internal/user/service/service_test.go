package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/raqamly/console/internal/user/domain"
	"github.com/raqamly/console/internal/user/repository"
	"github.com/raqamly/console/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(zap.NewNop(), repository.New(dbConn)), node
}

func TestCreateAssignsFreePlan(t *testing.T) {
	svc, node := newTestService(t)

	user, err := svc.Create(context.Background(), domain.CreateUserRequest{
		ID:           node.Generate(),
		Email:        "Alice@Example.com",
		Name:         "Alice",
		BusinessName: "Alice Flowers",
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.SubscriptionPlan != domain.DefaultSubscriptionPlan {
		t.Fatalf("expected plan %q, got %q", domain.DefaultSubscriptionPlan, user.SubscriptionPlan)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc, node := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateUserRequest{
		ID:    node.Generate(),
		Email: "carol@example.com",
		Name:  "Carol",
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	_, err = svc.Create(context.Background(), domain.CreateUserRequest{
		ID:    node.Generate(),
		Email: "carol@example.com",
		Name:  "Carol Again",
	})
	if err != domain.ErrExists {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestUpdateEditableFieldsOnly(t *testing.T) {
	svc, node := newTestService(t)

	created, err := svc.Create(context.Background(), domain.CreateUserRequest{
		ID:           node.Generate(),
		Email:        "bob@example.com",
		Name:         "Bob",
		BusinessName: "Bob Bikes",
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	name := "Robert"
	updated, err := svc.Update(context.Background(), created.ID, domain.UpdateUserRequest{Name: &name})
	if err != nil {
		t.Fatalf("failed to update user: %v", err)
	}
	if updated.Name != "Robert" {
		t.Fatalf("expected name Robert, got %q", updated.Name)
	}
	if updated.BusinessName != "Bob Bikes" {
		t.Fatalf("expected business name unchanged, got %q", updated.BusinessName)
	}
	if updated.Email != "bob@example.com" {
		t.Fatalf("expected email unchanged, got %q", updated.Email)
	}
}

func TestGetUnknownUser(t *testing.T) {
	svc, node := newTestService(t)

	if _, err := svc.Get(context.Background(), node.Generate()); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
