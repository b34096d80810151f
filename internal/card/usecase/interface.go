// Package usecase orchestrates batch generation of Luhn-valid card numbers over the issuer
// rule registry or caller-supplied prefixes and lengths.
package usecase

import (
	"context"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// CardUseCase defines the interface for card number generation and validation operations.
type CardUseCase interface {
	// GenerateByBrand returns one number for the brand.
	GenerateByBrand(ctx context.Context, brand cardDomain.Brand) (string, error)

	// GenerateListByBrand returns count independently generated numbers for the brand.
	// Repetition is possible; no uniqueness is guaranteed.
	GenerateListByBrand(ctx context.Context, count int, brand cardDomain.Brand) ([]string, error)

	// GenerateMapByBrands returns countEach numbers for every distinct brand. Repeated
	// brands collapse into a single entry and empty brands are skipped. Returns
	// ErrBrandsRequired when no brand remains.
	GenerateMapByBrands(
		ctx context.Context,
		countEach int,
		brands []cardDomain.Brand,
	) (map[cardDomain.Brand][]string, error)

	// GenerateByPrefix returns countEachPrefix numbers for every prefix, bypassing the
	// registry. Each number draws its length from lengths independently. Every
	// (length, prefix) pair is validated before anything is generated, and each prefix
	// must have strictly fewer digits than every length so the result has exactly that
	// many digits including the check digit.
	GenerateByPrefix(
		ctx context.Context,
		countEachPrefix int,
		lengths []int,
		prefixes []int64,
	) (map[int64][]string, error)

	// PassesLuhnCheck reports whether number satisfies the Luhn algorithm.
	PassesLuhnCheck(ctx context.Context, number string) (bool, error)

	// Inspect checks the Luhn digit of number and lists the brands whose rules it matches.
	Inspect(ctx context.Context, number string) (*cardDomain.Inspection, error)

	// ListBrands returns the issuer rules of every registered brand.
	ListBrands(ctx context.Context) ([]*cardDomain.IssuerRule, error)

	// GetBrand returns the issuer rule of one brand. Returns ErrBrandNotFound for brands
	// outside the registry.
	GetBrand(ctx context.Context, brand cardDomain.Brand) (*cardDomain.IssuerRule, error)
}
