package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/raqamly/console/internal/auth/domain"
	authrepository "github.com/raqamly/console/internal/auth/repository"
	authservice "github.com/raqamly/console/internal/auth/service"
	"github.com/raqamly/console/internal/signup/domain"
	userdomain "github.com/raqamly/console/internal/user/domain"
	userrepository "github.com/raqamly/console/internal/user/repository"
	userservice "github.com/raqamly/console/internal/user/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	log   *zap.Logger
	db    *gorm.DB
	auth  authdomain.Service
	genID *snowflake.Node
}

func New(log *zap.Logger, db *gorm.DB, auth authdomain.Service, genID *snowflake.Node) domain.Service {
	return &Service{
		log:   log.Named("signup.service"),
		db:    db,
		auth:  auth,
		genID: genID,
	}
}

// Signup creates the identity and its profile in one transaction, then logs
// the new account in. A failed profile insert rolls back the identity.
func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.SignupResult, error) {
	var profile *userdomain.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authRepo, sessionRepo := authrepository.New(tx)
		txAuth := authservice.New(s.log, authRepo, sessionRepo, s.genID)

		identity, err := txAuth.CreateIdentity(ctx, authdomain.CreateIdentityRequest{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return err
		}

		txUsers := userservice.New(s.log, userrepository.New(tx))
		profile, err = txUsers.Create(ctx, userdomain.CreateUserRequest{
			ID:           identity.ID,
			Email:        identity.Email,
			Name:         req.Name,
			BusinessName: req.BusinessName,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	login, err := s.auth.Login(ctx, authdomain.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: req.UserAgent,
		IPAddress: req.IPAddress,
	})
	if err != nil {
		return nil, err
	}

	return &domain.SignupResult{
		User:      profile,
		RawToken:  login.RawToken,
		ExpiresAt: login.ExpiresAt,
	}, nil
}
