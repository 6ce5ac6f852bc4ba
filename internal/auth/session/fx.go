package session

import (
	"github.com/raqamly/console/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.session",
	fx.Provide(NewFromAppConfig),
)

func NewFromAppConfig(cfg config.Config) *Manager {
	return NewManager(Config{
		Secure: cfg.AuthCookieSecure,
	})
}
