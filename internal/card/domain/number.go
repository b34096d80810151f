package domain

import (
	"fmt"
	"strconv"
)

// DigitCount returns the number of decimal digits in n.
func DigitCount(n int64) int {
	return len(strconv.FormatInt(n, 10))
}

// ValidateLength checks that a total number length is usable with the Luhn algorithm.
func ValidateLength(length int) error {
	if length < MinNumberLength || length > MaxNumberLength {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	return nil
}

// ValidatePrefix checks that a prefix is a positive number.
func ValidatePrefix(prefix int64) error {
	if prefix < 1 {
		return fmt.Errorf("%w: prefix (%d)", ErrInvalidPrefix, prefix)
	}
	return nil
}

// ValidatePrefixFits checks that a prefix leaves room for the check digit within length.
func ValidatePrefixFits(prefix int64, length int) error {
	if DigitCount(prefix) >= length {
		return fmt.Errorf("%w: prefix (%d) does not fit length (%d)", ErrPrefixTooLong, prefix, length)
	}
	return nil
}

// ValidateCount checks that a requested quantity is positive and, when max is positive,
// no larger than max.
func ValidateCount(count, max int) error {
	if count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if max > 0 && count > max {
		return fmt.Errorf("%w: %d > %d", ErrCountTooLarge, count, max)
	}
	return nil
}

// Inspection describes a candidate card number.
type Inspection struct {
	Number string
	Valid  bool
	Brands []Brand
}
