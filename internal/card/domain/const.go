// Package domain defines the issuer numbering-rule model for synthetic payment-card numbers:
// card brands, the prefix ranges and lengths each brand accepts, and the fixed registry that
// binds them together.
package domain

// Number length constraints
const (
	// MinNumberLength is the shortest number the Luhn algorithm can protect:
	// one payload digit plus the check digit.
	MinNumberLength = 2

	// MaxNumberLength caps caller-supplied lengths for format-preserving numbers.
	MaxNumberLength = 255
)
