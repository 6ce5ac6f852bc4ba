package auth

import (
	"github.com/raqamly/console/internal/auth/repository"
	"github.com/raqamly/console/internal/auth/service"
	"github.com/raqamly/console/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth",
	fx.Provide(repository.New),
	fx.Provide(service.New),
	session.Module,
)
