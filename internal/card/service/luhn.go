package service

import (
	"fmt"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// CalculateCheckDigit returns the digit that, appended to digits, makes the whole string pass
// the Luhn check. digits must not already contain a check digit.
func CalculateCheckDigit(digits string) (int, error) {
	if err := validateDigits(digits); err != nil {
		return 0, err
	}
	return checkDigit(luhnSum(digits, len(digits)-1)), nil
}

// PassesLuhnCheck reports whether number, whose last digit is the claimed check digit,
// satisfies the Luhn algorithm. Returns ErrEmptyNumber for an empty string and
// ErrMalformedNumber when number contains anything other than 0-9.
func PassesLuhnCheck(number string) (bool, error) {
	if err := validateDigits(number); err != nil {
		return false, err
	}

	sum := luhnSum(number, len(number)-2)
	expected := checkDigit(sum)
	last := int(number[len(number)-1] - '0')

	return (sum+expected)%10 == 0 && last == expected, nil
}

// luhnSum walks from position start down to 0, doubling the digit at start and every
// second digit to its left. Doubled values above 9 are reduced by 9.
func luhnSum(digits string, start int) int {
	sum := 0
	double := true
	for i := start; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

func checkDigit(sum int) int {
	return (sum * 9) % 10
}

func validateDigits(s string) error {
	if s == "" {
		return cardDomain.ErrEmptyNumber
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q at position %d", cardDomain.ErrMalformedNumber, s[i], i)
		}
	}
	return nil
}
