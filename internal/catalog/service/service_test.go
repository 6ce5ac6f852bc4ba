package service

import (
	"context"
	"testing"
	"time"

	"github.com/raqamly/console/internal/catalog/domain"
	"github.com/raqamly/console/internal/catalog/repository"
	"github.com/raqamly/console/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	local, err := db.NewTestLocal()
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}
	repo, err := repository.New(local)
	if err != nil {
		t.Fatalf("failed to build repository: %v", err)
	}
	return New(zap.NewNop(), repo)
}

func waitSnapshot(t *testing.T, sub *domain.Subscription) []domain.Product {
	t.Helper()
	select {
	case snapshot, ok := <-sub.Snapshots():
		if !ok {
			t.Fatal("subscription closed unexpectedly")
		}
		return snapshot
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestAddThenList(t *testing.T) {
	svc := newTestService(t)

	added, err := svc.Add(context.Background(), domain.AddProductRequest{
		Name:  "Olive Oil",
		Price: 12,
	})
	if err != nil {
		t.Fatalf("failed to add product: %v", err)
	}
	if added.ID == 0 {
		t.Fatal("expected assigned local id")
	}

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(products) != 1 || products[0].ID != added.ID {
		t.Fatalf("expected exactly the added product, got %+v", products)
	}
}

func TestUpdateChangesOnlyPrice(t *testing.T) {
	svc := newTestService(t)

	added, err := svc.Add(context.Background(), domain.AddProductRequest{
		Name:        "Soap",
		Description: "Lavender bar soap",
		Price:       4,
	})
	if err != nil {
		t.Fatalf("failed to add product: %v", err)
	}

	price := 5.5
	updated, err := svc.Update(context.Background(), added.ID, domain.UpdateProductRequest{Price: &price})
	if err != nil {
		t.Fatalf("failed to update: %v", err)
	}
	if updated.Price != 5.5 {
		t.Fatalf("expected price 5.5, got %v", updated.Price)
	}
	if updated.Name != "Soap" || updated.Description != "Lavender bar soap" {
		t.Fatal("expected other fields unchanged")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	svc := newTestService(t)

	added, err := svc.Add(context.Background(), domain.AddProductRequest{Name: "Candle", Price: 9})
	if err != nil {
		t.Fatalf("failed to add product: %v", err)
	}

	if err := svc.Delete(context.Background(), added.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if err := svc.Delete(context.Background(), added.ID); err != nil {
		t.Fatalf("expected second delete to be a no-op, got %v", err)
	}
	if _, err := svc.Get(context.Background(), added.ID); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWatchReceivesSnapshots(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Add(context.Background(), domain.AddProductRequest{Name: "Tea", Price: 6}); err != nil {
		t.Fatalf("failed to add product: %v", err)
	}

	sub, err := svc.Watch(context.Background())
	if err != nil {
		t.Fatalf("failed to watch: %v", err)
	}
	defer sub.Close()

	initial := waitSnapshot(t, sub)
	if len(initial) != 1 || initial[0].Name != "Tea" {
		t.Fatalf("expected initial snapshot with Tea, got %+v", initial)
	}

	if _, err := svc.Add(context.Background(), domain.AddProductRequest{Name: "Coffee", Price: 8}); err != nil {
		t.Fatalf("failed to add product: %v", err)
	}

	next := waitSnapshot(t, sub)
	if len(next) != 2 {
		t.Fatalf("expected snapshot with 2 products, got %d", len(next))
	}
}

func TestWatchCloseDetaches(t *testing.T) {
	svc := newTestService(t)

	sub, err := svc.Watch(context.Background())
	if err != nil {
		t.Fatalf("failed to watch: %v", err)
	}
	sub.Close()
	sub.Close()

	if _, ok := <-sub.Snapshots(); ok {
		// the seeded empty snapshot may still be buffered; drain once more
		if _, ok := <-sub.Snapshots(); ok {
			t.Fatal("expected channel to close after Close")
		}
	}
}
