package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

// RunGeneratePrefix prints countEach numbers for every prefix, each number taking one of
// the given lengths. Every prefix must leave room for the check digit in every length.
func RunGeneratePrefix(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	prefixes []int64,
	lengths []int,
	countEach int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	cards, err := useCase.GenerateByPrefix(ctx, countEach, lengths, prefixes)
	if err != nil {
		return fmt.Errorf("failed to generate card numbers: %w", err)
	}
	logger.Debug("generated prefix batch",
		slog.Int("prefixes", len(cards)),
		slog.Int("count_each", countEach),
	)

	if format != FormatText {
		out := make(map[string][]string, len(cards))
		for prefix, numbers := range cards {
			out[strconv.FormatInt(prefix, 10)] = numbers
		}
		return writeStructured(writer, format, out)
	}

	keys := make([]int64, 0, len(cards))
	for prefix := range cards {
		keys = append(keys, prefix)
	}
	slices.Sort(keys)

	for _, prefix := range keys {
		if _, err := fmt.Fprintf(writer, "%d:\n", prefix); err != nil {
			return err
		}
		for _, number := range cards[prefix] {
			if _, err := fmt.Fprintf(writer, "  %s\n", number); err != nil {
				return err
			}
		}
	}
	return nil
}
