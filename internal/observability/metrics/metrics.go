package metrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config controls metric export.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application counters.
type Metrics struct {
	campaignGenerations metric.Int64Counter
	catalogWrites       metric.Int64Counter
	productWrites       metric.Int64Counter
	loginAttempts       metric.Int64Counter
}

// NewProvider builds a meter provider and installs it globally.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.Environment),
	))
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(30*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()
				if err := provider.Shutdown(shutdownCtx); err != nil {
					log.Warn("meter provider shutdown", zap.Error(err))
				}
				return nil
			},
		})
	}

	return provider, nil
}

// New builds the application metric set.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter("raqamly")

	campaignGenerations, err := meter.Int64Counter("campaign_generations_total",
		metric.WithDescription("Campaign generation attempts by platform and outcome"))
	if err != nil {
		return nil, err
	}
	catalogWrites, err := meter.Int64Counter("catalog_writes_total",
		metric.WithDescription("Local catalog store mutations by operation"))
	if err != nil {
		return nil, err
	}
	productWrites, err := meter.Int64Counter("product_writes_total",
		metric.WithDescription("Backend product mutations by operation"))
	if err != nil {
		return nil, err
	}
	loginAttempts, err := meter.Int64Counter("login_attempts_total",
		metric.WithDescription("Login attempts by outcome"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		campaignGenerations: campaignGenerations,
		catalogWrites:       catalogWrites,
		productWrites:       productWrites,
		loginAttempts:       loginAttempts,
	}, nil
}

func (m *Metrics) RecordCampaignGeneration(ctx context.Context, platform, outcome string) {
	if m == nil || m.campaignGenerations == nil {
		return
	}
	m.campaignGenerations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("platform", strings.ToLower(strings.TrimSpace(platform))),
		attribute.String("outcome", outcome),
	))
}

func (m *Metrics) RecordCatalogWrite(ctx context.Context, operation string) {
	if m == nil || m.catalogWrites == nil {
		return
	}
	m.catalogWrites.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *Metrics) RecordProductWrite(ctx context.Context, operation string) {
	if m == nil || m.productWrites == nil {
		return
	}
	m.productWrites.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *Metrics) RecordLoginAttempt(ctx context.Context, outcome string) {
	if m == nil || m.loginAttempts == nil {
		return
	}
	m.loginAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("otlp exporter endpoint is required")
	}
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	case "http", "http/protobuf":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported otlp protocol %q", protocol)
	}
}
