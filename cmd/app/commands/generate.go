package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

// generateOutput is the structured view of numbers generated for one brand.
type generateOutput struct {
	Brand   string   `json:"brand"   yaml:"brand"`
	Numbers []string `json:"numbers" yaml:"numbers"`
}

// RunGenerate prints count numbers for a single brand, one per line in text format.
func RunGenerate(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	brandName string,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	brand, err := cardDomain.ParseBrand(brandName)
	if err != nil {
		return err
	}

	numbers, err := useCase.GenerateListByBrand(ctx, count, brand)
	if err != nil {
		return fmt.Errorf("failed to generate card numbers: %w", err)
	}
	logger.Debug("generated card numbers",
		slog.String("brand", brand.String()),
		slog.Int("count", len(numbers)),
	)

	if format != FormatText {
		return writeStructured(writer, format, generateOutput{Brand: brand.String(), Numbers: numbers})
	}

	for _, number := range numbers {
		if _, err := fmt.Fprintln(writer, number); err != nil {
			return err
		}
	}
	return nil
}
