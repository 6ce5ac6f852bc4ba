package user

import (
	"github.com/raqamly/console/internal/user/repository"
	"github.com/raqamly/console/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
