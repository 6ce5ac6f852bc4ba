package catalog

import (
	"github.com/raqamly/console/internal/catalog/repository"
	"github.com/raqamly/console/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
