// Package service provides the Luhn checksum engine and the card number generator built on it.
package service

import (
	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// RandomSource supplies uniformly distributed integers in [0, n).
// Implementations must be safe for concurrent use.
type RandomSource interface {
	IntN(n int) int
}

// CardGenerator defines the interface for Luhn-valid card number generation.
type CardGenerator interface {
	// Generate returns a number of exactly length digits that starts with prefix and ends
	// with its Luhn check digit.
	Generate(prefix int64, length int) (string, error)

	// GenerateWithLengths picks one of lengths uniformly and delegates to Generate.
	GenerateWithLengths(prefix int64, lengths []int) (string, error)

	// GenerateForRule picks a prefix and a length from the rule independently and
	// uniformly, then delegates to Generate.
	GenerateForRule(rule *cardDomain.IssuerRule) (string, error)
}
