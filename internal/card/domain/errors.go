package domain

import (
	"github.com/allisson/cardgen/internal/errors"
)

var (
	// ErrNoRanges indicates no usable range was supplied to the range expander.
	ErrNoRanges = errors.Wrap(errors.ErrInvalidInput, "ranges is nil or empty")

	// ErrInvalidRange indicates a range with a negative bound or a start after its end.
	ErrInvalidRange = errors.Wrap(errors.ErrInvalidInput, "invalid numeric range")

	// ErrBrandRequired indicates a missing card brand.
	ErrBrandRequired = errors.Wrap(errors.ErrInvalidInput, "card brand is required")

	// ErrBrandsRequired indicates an empty set of card brands.
	ErrBrandsRequired = errors.Wrap(errors.ErrInvalidInput, "card brands is nil or empty")

	// ErrUnknownBrand indicates a card brand outside the registry.
	ErrUnknownBrand = errors.Wrap(errors.ErrInvalidInput, "unknown card brand")

	// ErrBrandNotFound indicates a lookup for a brand that is not registered.
	ErrBrandNotFound = errors.Wrap(errors.ErrNotFound, "card brand not found")

	// ErrRuleRequired indicates a nil issuer rule.
	ErrRuleRequired = errors.Wrap(errors.ErrInvalidInput, "issuer rule is required")

	// ErrInvalidCount indicates a non-positive number of cards was requested.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "count must be greater than zero")

	// ErrCountTooLarge indicates a request above the configured batch ceiling.
	ErrCountTooLarge = errors.Wrap(errors.ErrInvalidInput, "count exceeds maximum")

	// ErrLengthsRequired indicates an empty set of lengths.
	ErrLengthsRequired = errors.Wrap(errors.ErrInvalidInput, "no lengths were specified")

	// ErrPrefixesRequired indicates an empty set of prefixes.
	ErrPrefixesRequired = errors.Wrap(errors.ErrInvalidInput, "no prefixes were specified")

	// ErrInvalidLength indicates a length outside [MinNumberLength, MaxNumberLength].
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid length")

	// ErrInvalidPrefix indicates a prefix that is not a positive number.
	ErrInvalidPrefix = errors.Wrap(errors.ErrInvalidInput, "prefixes must be positive numbers")

	// ErrPrefixTooLong indicates a prefix that leaves no room for the check digit.
	ErrPrefixTooLong = errors.Wrap(errors.ErrInvalidInput, "prefix is longer than length")

	// ErrEmptyNumber indicates an empty number was given to the Luhn engine.
	ErrEmptyNumber = errors.Wrap(errors.ErrInvalidInput, "number is empty")

	// ErrMalformedNumber indicates a number containing characters other than 0-9.
	ErrMalformedNumber = errors.Wrap(errors.ErrInvalidInput, "number must contain only digits")
)
