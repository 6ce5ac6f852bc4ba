package product

import (
	"github.com/raqamly/console/internal/product/repository"
	"github.com/raqamly/console/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
