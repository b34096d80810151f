/*
Package card provides generation and validation of synthetic payment card numbers.

Generated numbers follow the issuer numbering rules of each brand and carry a valid Luhn
check digit. They are meant for test fixtures and sandboxes, never for real payments.

# Architecture

The module follows the same layering as the rest of the application:
  - domain: Brands, prefix ranges, issuer rules and the fixed registry
  - service: Luhn engine, random sources and the per-number generator
  - usecase: Batch generation by brand or prefix, validation, metrics decorator
  - http: HTTP handlers and DTOs

# Brands

	AMERICAN_EXPRESS  34, 37                              length 15
	VISA              4                                   lengths 13, 16, 19
	MASTERCARD        51-55, 2221-2720                    length 16
	DISCOVER          65, 644-649, 6011, 622126-622925    lengths 16, 19

Prefixes are picked uniformly from the expanded prefix set, so wide ranges such as
Discover's 622126-622925 dominate draws for that brand.

# Basic Usage

Generate numbers for a brand:

	numbers, err := cardUseCase.GenerateListByBrand(ctx, 10, domain.Visa)

Generate for several brands at once. Repeated brands collapse into one entry:

	cards, err := cardUseCase.GenerateMapByBrands(ctx, 5, []domain.Brand{domain.Visa, domain.Discover})

Generate from arbitrary prefixes, bypassing the registry:

	cards, err := cardUseCase.GenerateByPrefix(ctx, 3, []int{16, 19}, []int64{400000, 510000})

Check a number:

	ok, err := cardUseCase.PassesLuhnCheck(ctx, "4111111111111111")

# Reproducibility

A non-zero GENERATOR_SEED selects a seeded PCG source. Output is reproducible for a
given seed only when GENERATOR_WORKERS=1, since parallel brands and prefixes otherwise
interleave their draws.

# Constraints

  - Lengths: 2 to 255 digits
  - A prefix must be shorter than every length it is paired with
  - Counts are bounded by GENERATOR_MAX_COUNT per brand or prefix
*/
package card
