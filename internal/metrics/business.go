package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records what the card use cases do, independent of the transport that
// triggered them.
type BusinessMetrics interface {
	// RecordOperation counts one call of a use case operation.
	// domain is "cards"; operation is e.g. "generate_by_brand", "generate_by_prefix" or
	// "luhn_check"; status is "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes how long an operation took, in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordGenerated adds count to the number of card numbers produced. source is a brand
	// name such as "VISA", or "prefix" for caller-supplied prefixes.
	RecordGenerated(ctx context.Context, source string, count int)
}

type businessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
	generated  metric.Int64Counter
}

// NewBusinessMetrics registers the card instruments on meterProvider. Every instrument name
// starts with namespace, e.g. "cardgen_operations_total".
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		namespace+"_operations_total",
		metric.WithDescription("Card use case calls by operation and status"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		namespace+"_operation_duration_seconds",
		metric.WithDescription("Card use case latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	generated, err := meter.Int64Counter(
		namespace+"_card_numbers_generated_total",
		metric.WithDescription("Card numbers produced, by brand or prefix source"),
		metric.WithUnit("{number}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated counter: %w", err)
	}

	return &businessMetrics{
		operations: operations,
		durations:  durations,
		generated:  generated,
	}, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

// RecordGenerated ignores non-positive counts.
func (b *businessMetrics) RecordGenerated(ctx context.Context, source string, count int) {
	if count <= 0 {
		return
	}
	b.generated.Add(ctx, int64(count), metric.WithAttributes(attribute.String("source", source)))
}

// NoOpBusinessMetrics is used when METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordGenerated(ctx context.Context, source string, count int) {}
