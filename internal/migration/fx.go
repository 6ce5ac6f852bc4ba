package migration

import (
	authdomain "github.com/raqamly/console/internal/auth/domain"
	"github.com/raqamly/console/internal/config"
	notificationdomain "github.com/raqamly/console/internal/notification/domain"
	productdomain "github.com/raqamly/console/internal/product/domain"
	userdomain "github.com/raqamly/console/internal/user/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// mysql/sqlite deployments rely on model-driven migration
		return conn.AutoMigrate(
			&authdomain.Identity{},
			&authdomain.Session{},
			&userdomain.User{},
			&productdomain.Product{},
			&notificationdomain.Notification{},
		)
	}),
)
