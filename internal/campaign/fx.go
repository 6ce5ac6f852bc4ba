package campaign

import (
	"github.com/raqamly/console/internal/campaign/repository"
	"github.com/raqamly/console/internal/campaign/service"
	"go.uber.org/fx"
)

var Module = fx.Module("campaign",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
