package usecase

import (
	"context"
	"time"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/metrics"
)

const (
	metricsDomain = "cards"
	// prefixSource labels numbers generated from caller-supplied prefixes.
	prefixSource = "prefix"
)

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// GenerateByBrand records metrics for single number generation.
func (c *cardUseCaseWithMetrics) GenerateByBrand(ctx context.Context, brand cardDomain.Brand) (string, error) {
	start := time.Now()
	number, err := c.next.GenerateByBrand(ctx, brand)
	c.record(ctx, "generate_by_brand", start, err)
	if err == nil {
		c.metrics.RecordGenerated(ctx, brand.String(), 1)
	}
	return number, err
}

// GenerateListByBrand records metrics for list generation.
func (c *cardUseCaseWithMetrics) GenerateListByBrand(
	ctx context.Context,
	count int,
	brand cardDomain.Brand,
) ([]string, error) {
	start := time.Now()
	numbers, err := c.next.GenerateListByBrand(ctx, count, brand)
	c.record(ctx, "generate_list_by_brand", start, err)
	if err == nil {
		c.metrics.RecordGenerated(ctx, brand.String(), len(numbers))
	}
	return numbers, err
}

// GenerateMapByBrands records metrics for multi-brand generation.
func (c *cardUseCaseWithMetrics) GenerateMapByBrands(
	ctx context.Context,
	countEach int,
	brands []cardDomain.Brand,
) (map[cardDomain.Brand][]string, error) {
	start := time.Now()
	result, err := c.next.GenerateMapByBrands(ctx, countEach, brands)
	c.record(ctx, "generate_map_by_brands", start, err)
	for brand, numbers := range result {
		c.metrics.RecordGenerated(ctx, brand.String(), len(numbers))
	}
	return result, err
}

// GenerateByPrefix records metrics for prefix-based generation.
func (c *cardUseCaseWithMetrics) GenerateByPrefix(
	ctx context.Context,
	countEachPrefix int,
	lengths []int,
	prefixes []int64,
) (map[int64][]string, error) {
	start := time.Now()
	result, err := c.next.GenerateByPrefix(ctx, countEachPrefix, lengths, prefixes)
	c.record(ctx, "generate_by_prefix", start, err)
	if err == nil {
		total := 0
		for _, numbers := range result {
			total += len(numbers)
		}
		c.metrics.RecordGenerated(ctx, prefixSource, total)
	}
	return result, err
}

// PassesLuhnCheck records metrics for Luhn checks.
func (c *cardUseCaseWithMetrics) PassesLuhnCheck(ctx context.Context, number string) (bool, error) {
	start := time.Now()
	valid, err := c.next.PassesLuhnCheck(ctx, number)
	c.record(ctx, "luhn_check", start, err)
	return valid, err
}

// Inspect records metrics for number inspection.
func (c *cardUseCaseWithMetrics) Inspect(ctx context.Context, number string) (*cardDomain.Inspection, error) {
	start := time.Now()
	inspection, err := c.next.Inspect(ctx, number)
	c.record(ctx, "inspect", start, err)
	return inspection, err
}

// ListBrands records metrics for brand listing.
func (c *cardUseCaseWithMetrics) ListBrands(ctx context.Context) ([]*cardDomain.IssuerRule, error) {
	start := time.Now()
	rules, err := c.next.ListBrands(ctx)
	c.record(ctx, "list_brands", start, err)
	return rules, err
}

// GetBrand records metrics for brand lookups.
func (c *cardUseCaseWithMetrics) GetBrand(
	ctx context.Context,
	brand cardDomain.Brand,
) (*cardDomain.IssuerRule, error) {
	start := time.Now()
	rule, err := c.next.GetBrand(ctx, brand)
	c.record(ctx, "get_brand", start, err)
	return rule, err
}
