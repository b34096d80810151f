package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// unmatchedRoute labels requests that matched no registered route, so 404s for
// arbitrary paths do not create new series.
const unmatchedRoute = "unmatched"

type httpMetrics struct {
	requests  metric.Int64Counter
	durations metric.Float64Histogram
}

func newHTTPMetrics(meterProvider metric.MeterProvider, namespace string) (*httpMetrics, error) {
	meter := meterProvider.Meter(namespace)

	requests, err := meter.Int64Counter(
		namespace+"_http_requests_total",
		metric.WithDescription("API requests by method, route and status code"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	durations, err := meter.Float64Histogram(
		namespace+"_http_request_duration_seconds",
		metric.WithDescription("API request latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{requests: requests, durations: durations}, nil
}

func (m *httpMetrics) observe(c *gin.Context, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", c.Request.Method),
		attribute.String("route", routeLabel(c.FullPath())),
		attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
	)
	m.requests.Add(c.Request.Context(), 1, attrs)
	m.durations.Record(c.Request.Context(), elapsed.Seconds(), attrs)
}

// HTTPMetricsMiddleware counts and times every request served by the card API. Requests are
// labeled by route pattern (e.g. /v1/cards/brands/:brand), never by the raw URL. If the
// instruments cannot be created the middleware only passes requests through.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	m, err := newHTTPMetrics(meterProvider, namespace)
	if err != nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.observe(c, time.Since(start))
	}
}

func routeLabel(fullPath string) string {
	if fullPath == "" {
		return unmatchedRoute
	}
	return fullPath
}
