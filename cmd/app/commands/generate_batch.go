package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

// RunGenerateBatch prints countEach numbers for every distinct brand. Text output groups
// numbers under a header per brand, in the order brands were first given.
func RunGenerateBatch(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	brandNames []string,
	countEach int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	brands, err := cardDomain.ParseBrands(brandNames)
	if err != nil {
		return err
	}

	cards, err := useCase.GenerateMapByBrands(ctx, countEach, brands)
	if err != nil {
		return fmt.Errorf("failed to generate card numbers: %w", err)
	}
	logger.Debug("generated card batch",
		slog.Int("brands", len(cards)),
		slog.Int("count_each", countEach),
	)

	if format != FormatText {
		out := make(map[string][]string, len(cards))
		for brand, numbers := range cards {
			out[brand.String()] = numbers
		}
		return writeStructured(writer, format, out)
	}

	for _, brand := range cardDomain.UniqueBrands(brands) {
		if _, err := fmt.Fprintf(writer, "%s:\n", brand); err != nil {
			return err
		}
		for _, number := range cards[brand] {
			if _, err := fmt.Fprintf(writer, "  %s\n", number); err != nil {
				return err
			}
		}
	}
	return nil
}
