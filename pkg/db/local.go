package db

import (
	"context"

	"github.com/glebarez/sqlite"
	"github.com/raqamly/console/internal/config"
	obslogger "github.com/raqamly/console/internal/observability/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Local wraps the on-device sqlite handle so it can coexist with the backend
// connection in the dependency graph.
type Local struct {
	*gorm.DB
}

// OpenLocal opens the on-device catalog database at CATALOG_DB_PATH.
func OpenLocal(lc fx.Lifecycle, cfg config.Config) (*Local, error) {
	conn, err := gorm.Open(sqlite.Open(cfg.CatalogDBPath), &gorm.Config{
		Logger:         obslogger.NewGormLogger(obslogger.DefaultGormLoggerConfig()),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return sqlDB.Close()
			},
		})
	}

	return &Local{DB: conn}, nil
}

// NewTestLocal opens an in-memory local store for tests.
func NewTestLocal() (*Local, error) {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return &Local{DB: conn}, nil
}
