package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/raqamly/console/internal/notification/domain"
	"github.com/raqamly/console/internal/notification/repository"
	"github.com/raqamly/console/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.Notification{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(zap.NewNop(), repository.New(dbConn), node), node
}

func TestNotifyAndList(t *testing.T) {
	svc, node := newTestService(t)
	userID := node.Generate()

	created, err := svc.Notify(context.Background(), userID, domain.NotifyRequest{
		Type:    domain.TypeSuccess,
		Content: "Export ready: campaign_mug_Facebook.txt",
	})
	if err != nil {
		t.Fatalf("failed to notify: %v", err)
	}
	if created.Type != domain.TypeSuccess {
		t.Fatalf("expected success type, got %q", created.Type)
	}
	if _, err := svc.Notify(context.Background(), node.Generate(), domain.NotifyRequest{Content: "other user"}); err != nil {
		t.Fatalf("failed to notify: %v", err)
	}

	notifications, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Content != "Export ready: campaign_mug_Facebook.txt" {
		t.Fatalf("expected only the user's notification, got %+v", notifications)
	}
}

func TestNotifyDefaultsToMessage(t *testing.T) {
	svc, node := newTestService(t)

	created, err := svc.Notify(context.Background(), node.Generate(), domain.NotifyRequest{Content: "hello"})
	if err != nil {
		t.Fatalf("failed to notify: %v", err)
	}
	if created.Type != domain.TypeMessage {
		t.Fatalf("expected message type, got %q", created.Type)
	}
}

func TestNotifyRejectsUnknownType(t *testing.T) {
	svc, node := newTestService(t)

	if _, err := svc.Notify(context.Background(), node.Generate(), domain.NotifyRequest{
		Type:    "urgent",
		Content: "hello",
	}); err != domain.ErrInvalidType {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestNotifyRequiresContent(t *testing.T) {
	svc, node := newTestService(t)

	if _, err := svc.Notify(context.Background(), node.Generate(), domain.NotifyRequest{
		Type: domain.TypeMessage,
	}); err != domain.ErrInvalidContent {
		t.Fatalf("expected ErrInvalidContent, got %v", err)
	}
}
