package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	authdomain "github.com/raqamly/console/internal/auth/domain"
	"github.com/raqamly/console/internal/auth/session"
	campaigndomain "github.com/raqamly/console/internal/campaign/domain"
	catalogdomain "github.com/raqamly/console/internal/catalog/domain"
	"github.com/raqamly/console/internal/config"
	notificationdomain "github.com/raqamly/console/internal/notification/domain"
	"github.com/raqamly/console/internal/observability"
	"github.com/raqamly/console/internal/observability/logger"
	"github.com/raqamly/console/internal/observability/metrics"
	"github.com/raqamly/console/internal/observability/tracing"
	productdomain "github.com/raqamly/console/internal/product/domain"
	signupdomain "github.com/raqamly/console/internal/signup/domain"
	userdomain "github.com/raqamly/console/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// generation requests are throttled per process: bursts of three, refilled
// every two seconds
const (
	generateRefillInterval = 2 * time.Second
	generateBurst          = 3
)

var Module = fx.Module("server",
	fx.Provide(NewAuthenticator),
	fx.Provide(NewEngine),
	fx.Invoke(Run),
)

// EngineParams collects everything the HTTP surface needs.
type EngineParams struct {
	fx.In

	Config config.Config
	ObsCfg observability.Config

	HTTPMetrics *metrics.HTTPMetrics
	Metrics     *metrics.Metrics

	Sessions      *session.Manager
	Authn         *Authenticator
	Auth          authdomain.Service
	Signup        signupdomain.Service
	Users         userdomain.Service
	Products      productdomain.Service
	Catalog       catalogdomain.Service
	Campaigns     campaigndomain.Service
	Notifications notificationdomain.Service
}

// NewEngine builds the gin engine with the middleware chain and all routes.
func NewEngine(p EngineParams) *gin.Engine {
	if p.ObsCfg.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Debug:           p.ObsCfg.Debug(),
		ErrorClassifier: classifyError,
	}))
	engine.Use(tracing.GinMiddleware())
	engine.Use(metrics.GinMiddleware(p.HTTPMetrics))
	engine.Use(ErrorHandlingMiddleware())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/v1")

	(&authHandler{
		sessions: p.Sessions,
		auth:     p.Auth,
		signup:   p.Signup,
		users:    p.Users,
		authn:    p.Authn,
		metrics:  p.Metrics,
	}).Register(v1)

	(&productHandler{
		products: p.Products,
		authn:    p.Authn,
		metrics:  p.Metrics,
	}).Register(v1)

	(&catalogHandler{
		catalog: p.Catalog,
		authn:   p.Authn,
		metrics: p.Metrics,
	}).Register(v1)

	(&campaignHandler{
		campaigns:     p.Campaigns,
		notifications: p.Notifications,
		authn:         p.Authn,
		metrics:       p.Metrics,
		limiter:       rate.NewLimiter(rate.Every(generateRefillInterval), generateBurst),
	}).Register(v1)

	(&notificationHandler{
		notifications: p.Notifications,
		authn:         p.Authn,
	}).Register(v1)

	return engine
}

// Run binds the HTTP server to the fx lifecycle.
func Run(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
