package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardgen/cmd/app/commands"
	"github.com/allisson/cardgen/internal/app"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
	"github.com/allisson/cardgen/internal/config"
)

// withCardUseCase builds a container, hands its card use case to run and releases it afterwards.
func withCardUseCase(
	ctx context.Context,
	run func(useCase cardUseCase.CardUseCase, container *app.Container) error,
) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	useCase, err := container.CardUseCase()
	if err != nil {
		return err
	}
	return run(useCase, container)
}

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "brands",
			Usage: "List supported card brands with their prefix ranges and lengths",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCardUseCase(ctx, func(useCase cardUseCase.CardUseCase, container *app.Container) error {
					return commands.RunBrands(
						ctx,
						useCase,
						container.Logger(),
						os.Stdout,
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "generate",
			Usage: "Generate card numbers for a brand",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "brand",
					Aliases:  []string{"b"},
					Required: true,
					Usage:    "Card brand (e.g., visa, mastercard, amex, discover)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "How many numbers to generate",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCardUseCase(ctx, func(useCase cardUseCase.CardUseCase, container *app.Container) error {
					return commands.RunGenerate(
						ctx,
						useCase,
						container.Logger(),
						os.Stdout,
						cmd.String("brand"),
						int(cmd.Int("count")),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "generate-batch",
			Usage: "Generate the same number of cards for several brands",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "brand",
					Aliases:  []string{"b"},
					Required: true,
					Usage:    "Card brand, repeat the flag for more brands",
				},
				&cli.IntFlag{
					Name:    "count-each",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "How many numbers to generate per brand",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCardUseCase(ctx, func(useCase cardUseCase.CardUseCase, container *app.Container) error {
					return commands.RunGenerateBatch(
						ctx,
						useCase,
						container.Logger(),
						os.Stdout,
						cmd.StringSlice("brand"),
						int(cmd.Int("count-each")),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "generate-prefix",
			Usage: "Generate Luhn-valid numbers from arbitrary prefixes and lengths",
			Flags: []cli.Flag{
				&cli.Int64SliceFlag{
					Name:     "prefix",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Leading digits, repeat the flag for more prefixes",
				},
				&cli.IntSliceFlag{
					Name:     "length",
					Aliases:  []string{"l"},
					Required: true,
					Usage:    "Total number length, repeat the flag for more lengths",
				},
				&cli.IntFlag{
					Name:    "count-each",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "How many numbers to generate per prefix",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCardUseCase(ctx, func(useCase cardUseCase.CardUseCase, container *app.Container) error {
					return commands.RunGeneratePrefix(
						ctx,
						useCase,
						container.Logger(),
						os.Stdout,
						cmd.Int64Slice("prefix"),
						cmd.IntSlice("length"),
						int(cmd.Int("count-each")),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "validate",
			Usage:     "Run the Luhn check on card numbers and identify their brands",
			ArgsUsage: "NUMBER [NUMBER...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCardUseCase(ctx, func(useCase cardUseCase.CardUseCase, container *app.Container) error {
					return commands.RunValidate(
						ctx,
						useCase,
						container.Logger(),
						os.Stdout,
						cmd.Args().Slice(),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
