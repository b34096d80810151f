package usecase

import (
	"context"
	"errors"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	cardService "github.com/allisson/cardgen/internal/card/service"
)

// Config holds batch generation settings.
type Config struct {
	// Workers bounds how many brands or prefixes are generated concurrently.
	// Zero or less means runtime.GOMAXPROCS(0).
	Workers int
	// MaxCount bounds the per-brand or per-prefix count. Zero or less means no limit.
	MaxCount int
}

type cardUseCase struct {
	generator cardService.CardGenerator
	workers   int
	maxCount  int
}

// NewCardUseCase creates a CardUseCase backed by generator.
func NewCardUseCase(generator cardService.CardGenerator, cfg Config) CardUseCase {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &cardUseCase{
		generator: generator,
		workers:   workers,
		maxCount:  max(cfg.MaxCount, 0),
	}
}

// GenerateByBrand delegates to the generator with the brand's issuer rule.
func (c *cardUseCase) GenerateByBrand(ctx context.Context, brand cardDomain.Brand) (string, error) {
	rule, err := cardDomain.Rule(brand)
	if err != nil {
		return "", err
	}
	return c.generator.GenerateForRule(rule)
}

// GenerateListByBrand validates the count before the brand.
func (c *cardUseCase) GenerateListByBrand(
	ctx context.Context,
	count int,
	brand cardDomain.Brand,
) ([]string, error) {
	if err := cardDomain.ValidateCount(count, c.maxCount); err != nil {
		return nil, err
	}
	rule, err := cardDomain.Rule(brand)
	if err != nil {
		return nil, err
	}
	return c.generateList(ctx, count, func() (string, error) {
		return c.generator.GenerateForRule(rule)
	})
}

// GenerateMapByBrands resolves every brand up front, then generates one list per brand
// concurrently.
func (c *cardUseCase) GenerateMapByBrands(
	ctx context.Context,
	countEach int,
	brands []cardDomain.Brand,
) (map[cardDomain.Brand][]string, error) {
	if err := cardDomain.ValidateCount(countEach, c.maxCount); err != nil {
		return nil, err
	}
	unique := cardDomain.UniqueBrands(brands)
	if len(unique) == 0 {
		return nil, cardDomain.ErrBrandsRequired
	}
	rules := make([]*cardDomain.IssuerRule, len(unique))
	for i, b := range unique {
		rule, err := cardDomain.Rule(b)
		if err != nil {
			return nil, err
		}
		rules[i] = rule
	}

	lists := make([][]string, len(rules))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, rule := range rules {
		g.Go(func() error {
			numbers, err := c.generateList(gctx, countEach, func() (string, error) {
				return c.generator.GenerateForRule(rule)
			})
			if err != nil {
				return err
			}
			lists[i] = numbers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[cardDomain.Brand][]string, len(rules))
	for i, rule := range rules {
		result[rule.Brand()] = lists[i]
	}
	return result, nil
}

// GenerateByPrefix validates the whole lengths x prefixes cross product before generating.
func (c *cardUseCase) GenerateByPrefix(
	ctx context.Context,
	countEachPrefix int,
	lengths []int,
	prefixes []int64,
) (map[int64][]string, error) {
	if err := cardDomain.ValidateCount(countEachPrefix, c.maxCount); err != nil {
		return nil, err
	}
	if len(lengths) == 0 {
		return nil, cardDomain.ErrLengthsRequired
	}
	if len(prefixes) == 0 {
		return nil, cardDomain.ErrPrefixesRequired
	}

	lengthSet := uniqueSorted(lengths)
	prefixSet := uniqueSorted(prefixes)

	for _, length := range lengthSet {
		if err := cardDomain.ValidateLength(length); err != nil {
			return nil, err
		}
		for _, prefix := range prefixSet {
			if err := cardDomain.ValidatePrefix(prefix); err != nil {
				return nil, err
			}
			if err := cardDomain.ValidatePrefixFits(prefix, length); err != nil {
				return nil, err
			}
		}
	}

	lists := make([][]string, len(prefixSet))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, prefix := range prefixSet {
		g.Go(func() error {
			numbers, err := c.generateList(gctx, countEachPrefix, func() (string, error) {
				return c.generator.GenerateWithLengths(prefix, lengthSet)
			})
			if err != nil {
				return err
			}
			lists[i] = numbers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[int64][]string, len(prefixSet))
	for i, prefix := range prefixSet {
		result[prefix] = lists[i]
	}
	return result, nil
}

// PassesLuhnCheck delegates to the Luhn engine.
func (c *cardUseCase) PassesLuhnCheck(ctx context.Context, number string) (bool, error) {
	return cardService.PassesLuhnCheck(number)
}

// Inspect never reports brands for a malformed number.
func (c *cardUseCase) Inspect(ctx context.Context, number string) (*cardDomain.Inspection, error) {
	valid, err := cardService.PassesLuhnCheck(number)
	if err != nil {
		return nil, err
	}
	return &cardDomain.Inspection{
		Number: number,
		Valid:  valid,
		Brands: cardDomain.Identify(number),
	}, nil
}

// ListBrands returns the registry in table order.
func (c *cardUseCase) ListBrands(ctx context.Context) ([]*cardDomain.IssuerRule, error) {
	return cardDomain.Rules(), nil
}

// GetBrand maps unknown brands to ErrBrandNotFound.
func (c *cardUseCase) GetBrand(ctx context.Context, brand cardDomain.Brand) (*cardDomain.IssuerRule, error) {
	rule, err := cardDomain.Rule(brand)
	if errors.Is(err, cardDomain.ErrUnknownBrand) {
		return nil, cardDomain.ErrBrandNotFound
	}
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// generateList calls next count times, stopping early when ctx is cancelled.
func (c *cardUseCase) generateList(ctx context.Context, count int, next func() (string, error)) ([]string, error) {
	numbers := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		number, err := next()
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}
	return numbers, nil
}

func uniqueSorted[T int | int64](values []T) []T {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
