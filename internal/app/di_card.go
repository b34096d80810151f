package app

import (
	"fmt"
	"sync"

	cardHTTP "github.com/allisson/cardgen/internal/card/http"
	cardService "github.com/allisson/cardgen/internal/card/service"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

// cardComponents groups the lazily built card dependencies.
type cardComponents struct {
	randomSource  cardService.RandomSource
	cardGenerator cardService.CardGenerator
	cardUseCase   cardUseCase.CardUseCase
	cardHandler   *cardHTTP.CardHandler

	randomSourceInit  sync.Once
	cardGeneratorInit sync.Once
	cardUseCaseInit   sync.Once
	cardHandlerInit   sync.Once
}

// RandomSource returns the random source used for card generation.
// A non-zero GENERATOR_SEED selects a reproducible source; otherwise crypto/rand backs it.
func (c *Container) RandomSource() cardService.RandomSource {
	c.randomSourceInit.Do(func() {
		c.randomSource = c.initRandomSource()
	})
	return c.randomSource
}

// CardGenerator returns the card number generator.
func (c *Container) CardGenerator() cardService.CardGenerator {
	c.cardGeneratorInit.Do(func() {
		c.cardGenerator = cardService.NewCardGenerator(c.RandomSource())
	})
	return c.cardGenerator
}

// CardUseCase returns the card use case instance.
func (c *Container) CardUseCase() (cardUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.setInitError("cardUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the card HTTP handler instance.
func (c *Container) CardHandler() (*cardHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.setInitError("cardHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

// initRandomSource picks a seeded or crypto backed source from configuration.
func (c *Container) initRandomSource() cardService.RandomSource {
	if c.config.GeneratorSeed != 0 {
		return cardService.NewSeededSource(uint64(c.config.GeneratorSeed))
	}
	return cardService.NewCryptoSource()
}

// initCardUseCase creates the card use case with all its dependencies.
func (c *Container) initCardUseCase() (cardUseCase.CardUseCase, error) {
	baseUseCase := cardUseCase.NewCardUseCase(c.CardGenerator(), cardUseCase.Config{
		Workers:  c.config.GeneratorWorkers,
		MaxCount: c.config.GeneratorMaxCount,
	})

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
		}
		return cardUseCase.NewCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCardHandler creates the card HTTP handler with all its dependencies.
func (c *Container) initCardHandler() (*cardHTTP.CardHandler, error) {
	useCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}

	return cardHTTP.NewCardHandler(useCase, c.Logger()), nil
}
