package main

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/raqamly/console/internal/auth"
	"github.com/raqamly/console/internal/campaign"
	"github.com/raqamly/console/internal/catalog"
	"github.com/raqamly/console/internal/config"
	"github.com/raqamly/console/internal/migration"
	"github.com/raqamly/console/internal/notification"
	"github.com/raqamly/console/internal/observability"
	"github.com/raqamly/console/internal/product"
	"github.com/raqamly/console/internal/providers/textgen"
	"github.com/raqamly/console/internal/server"
	"github.com/raqamly/console/internal/signup"
	"github.com/raqamly/console/internal/user"
	"github.com/raqamly/console/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		migration.Module,
		auth.Module,
		user.Module,
		signup.Module,
		product.Module,
		catalog.Module,
		textgen.Module,
		campaign.Module,
		notification.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	nodeID := int64(1)
	if v, ok := os.LookupEnv("SNOWFLAKE_NODE_ID"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		nodeID = parsed
	}
	return snowflake.NewNode(nodeID)
}
