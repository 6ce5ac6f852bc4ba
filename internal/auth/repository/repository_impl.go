package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/raqamly/console/internal/auth/domain"
	"github.com/raqamly/console/pkg/db"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

type sessionRepo struct {
	db *gorm.DB
}

// New builds the identity and session repositories over a shared handle.
func New(db *gorm.DB) (domain.Repository, domain.SessionRepository) {
	return &repo{db: db}, &sessionRepo{db: db}
}

// Create inserts the identity. The unique email index is the final word on
// duplicates; two concurrent signups both pass the pre-check and one of them
// lands here.
func (r *repo) Create(ctx context.Context, identity *domain.Identity) error {
	if err := r.db.WithContext(ctx).Create(identity).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.ErrIdentityExists
		}
		return err
	}
	return nil
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var identity domain.Identity
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return &identity, nil
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Identity, error) {
	var identity domain.Identity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return &identity, nil
}

func (r *sessionRepo) CreateSession(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).Where("session_token_hash = ?", tokenHash).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Revoke(ctx context.Context, id snowflake.ID) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now).Error
}

func (r *sessionRepo) Touch(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ?", id).
		Update("last_seen_at", time.Now().UTC()).Error
}
