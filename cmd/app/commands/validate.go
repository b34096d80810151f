package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

// validationResult is the outcome for a single number.
type validationResult struct {
	Number string   `json:"number"          yaml:"number"`
	Valid  bool     `json:"valid"           yaml:"valid"`
	Brands []string `json:"brands"          yaml:"brands"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// validationReport summarizes a validate run.
type validationReport struct {
	Results []validationResult `json:"results" yaml:"results"`
	Passed  int                `json:"passed"  yaml:"passed"`
	Failed  int                `json:"failed"  yaml:"failed"`
}

// RunValidate runs the Luhn check on every number and reports the brands each matches.
// Returns an error when at least one number fails, so the process exits non-zero.
func RunValidate(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	numbers []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(numbers) == 0 {
		return fmt.Errorf("at least one number is required")
	}

	report := validationReport{Results: make([]validationResult, 0, len(numbers))}
	for _, number := range numbers {
		result := validationResult{Number: number, Brands: []string{}}

		inspection, err := useCase.Inspect(ctx, number)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Valid = inspection.Valid
			for _, brand := range inspection.Brands {
				result.Brands = append(result.Brands, brand.String())
			}
		}

		if result.Valid {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}
	logger.Debug("validated card numbers",
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
	)

	if format != FormatText {
		if err := writeStructured(writer, format, report); err != nil {
			return err
		}
	} else {
		for _, result := range report.Results {
			if err := writeValidationLine(writer, result); err != nil {
				return err
			}
		}
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d numbers failed validation", report.Failed, len(numbers))
	}
	return nil
}

func writeValidationLine(w io.Writer, result validationResult) error {
	label := passLabel
	if !result.Valid {
		label = failLabel
	}

	detail := strings.Join(result.Brands, ",")
	if result.Error != "" {
		detail = result.Error
	}
	if detail == "" {
		detail = "-"
	}

	_, err := fmt.Fprintf(w, "%s  %s  %s\n", label, result.Number, detail)
	return err
}
