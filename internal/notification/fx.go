package notification

import (
	"github.com/raqamly/console/internal/notification/repository"
	"github.com/raqamly/console/internal/notification/service"
	"go.uber.org/fx"
)

var Module = fx.Module("notification",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
