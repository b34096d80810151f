package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

// brandOutput is the structured view of an issuer rule.
type brandOutput struct {
	Brand       string                    `json:"brand"        yaml:"brand"`
	Ranges      []cardDomain.NumericRange `json:"ranges"       yaml:"ranges"`
	Lengths     []int                     `json:"lengths"      yaml:"lengths"`
	PrefixCount int                       `json:"prefix_count" yaml:"prefix_count"`
}

// RunBrands prints every registered brand with its prefix ranges and lengths.
func RunBrands(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	rules, err := useCase.ListBrands(ctx)
	if err != nil {
		return fmt.Errorf("failed to list brands: %w", err)
	}
	logger.Debug("listed brands", slog.Int("count", len(rules)))

	if format != FormatText {
		out := make([]brandOutput, 0, len(rules))
		for _, rule := range rules {
			out = append(out, brandOutput{
				Brand:       rule.Brand().String(),
				Ranges:      rule.Ranges(),
				Lengths:     rule.Lengths(),
				PrefixCount: rule.PrefixCount(),
			})
		}
		return writeStructured(writer, format, out)
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "BRAND\tRANGES\tLENGTHS\tPREFIXES")
	for _, rule := range rules {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			rule.Brand(),
			formatRanges(rule.Ranges()),
			formatInts(rule.Lengths()),
			rule.PrefixCount(),
		)
	}
	return tw.Flush()
}

// formatRanges renders ranges as "34,37" or "51-55,2221-2720".
func formatRanges(ranges []cardDomain.NumericRange) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if r.Start == r.End {
			parts = append(parts, fmt.Sprintf("%d", r.Start))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d-%d", r.Start, r.End))
	}
	return strings.Join(parts, ",")
}

func formatInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return strings.Join(parts, ",")
}
