package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetrics records inbound request durations.
type HTTPMetrics struct {
	duration metric.Float64Histogram
}

// NewHTTPMetrics builds the HTTP server metric set.
func NewHTTPMetrics(provider metric.MeterProvider) (*HTTPMetrics, error) {
	meter := provider.Meter("raqamly/http")
	duration, err := meter.Float64Histogram("http_server_duration_seconds",
		metric.WithDescription("Inbound HTTP request duration"))
	if err != nil {
		return nil, err
	}
	return &HTTPMetrics{duration: duration}, nil
}

// GinMiddleware records per-request metrics keyed by route and status.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil || m.duration == nil {
			return
		}

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.duration.Record(c.Request.Context(), time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.status_code", strconv.Itoa(c.Writer.Status())),
		))
	}
}
