package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/raqamly/console/internal/product/domain"
	"github.com/raqamly/console/internal/product/repository"
	"github.com/raqamly/console/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(zap.NewNop(), repository.New(dbConn), node), node
}

func TestCreateStampsOwner(t *testing.T) {
	svc, node := newTestService(t)
	userID := node.Generate()

	product, err := svc.Create(context.Background(), userID, domain.CreateProductRequest{
		Name:        "Ceramic Mug",
		Description: "Hand thrown stoneware mug",
		Price:       18.50,
		Tags:        []string{"kitchen", "handmade"},
	})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	if product.UserID != userID {
		t.Fatalf("expected owner %v, got %v", userID, product.UserID)
	}
	if product.ID == 0 {
		t.Fatal("expected generated id")
	}
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc, node := newTestService(t)

	_, err := svc.Create(context.Background(), node.Generate(), domain.CreateProductRequest{
		Name:  "Mug",
		Price: -1,
	})
	if err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestListOwnerScopedNewestFirst(t *testing.T) {
	svc, node := newTestService(t)
	owner := node.Generate()
	other := node.Generate()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := svc.Create(context.Background(), owner, domain.CreateProductRequest{Name: name, Price: 1}); err != nil {
			t.Fatalf("failed to create product: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), other, domain.CreateProductRequest{Name: "Foreign", Price: 1}); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	products, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("failed to list products: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for _, p := range products {
		if p.UserID != owner {
			t.Fatalf("expected only owner products, got %v", p.UserID)
		}
	}
	for i := 1; i < len(products); i++ {
		if products[i].CreatedAt.After(products[i-1].CreatedAt) {
			t.Fatal("expected newest first ordering")
		}
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, node := newTestService(t)
	owner := node.Generate()

	created, err := svc.Create(context.Background(), owner, domain.CreateProductRequest{
		Name:        "Lamp",
		Description: "Walnut desk lamp",
		Price:       120,
	})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	price := 99.0
	updated, err := svc.Update(context.Background(), owner, created.ID, domain.UpdateProductRequest{Price: &price})
	if err != nil {
		t.Fatalf("failed to update product: %v", err)
	}
	if updated.Price != 99 {
		t.Fatalf("expected price 99, got %v", updated.Price)
	}
	if updated.Name != "Lamp" || updated.Description != "Walnut desk lamp" {
		t.Fatal("expected untouched fields to survive")
	}
}

func TestGetForeignProductHidden(t *testing.T) {
	svc, node := newTestService(t)
	owner := node.Generate()

	created, err := svc.Create(context.Background(), owner, domain.CreateProductRequest{Name: "Chair", Price: 40})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	if _, err := svc.Get(context.Background(), node.Generate(), created.ID); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	svc, node := newTestService(t)
	owner := node.Generate()

	created, err := svc.Create(context.Background(), owner, domain.CreateProductRequest{Name: "Vase", Price: 25})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("failed to delete product: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("expected second delete to be a no-op, got %v", err)
	}
	if _, err := svc.Get(context.Background(), owner, created.ID); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
