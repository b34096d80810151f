package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

func TestPassesLuhnCheck(t *testing.T) {
	tests := []struct {
		name        string
		number      string
		expected    bool
		expectedErr error
	}{
		{name: "Valid_Amex_378282246310005", number: "378282246310005", expected: true},
		{name: "Valid_Visa_4111111111111111", number: "4111111111111111", expected: true},
		{name: "Valid_Mastercard_5105105105105100", number: "5105105105105100", expected: true},
		{name: "Valid_Discover_6011111111111117", number: "6011111111111117", expected: true},
		{name: "Valid_KnownLuhnNumber_79927398713", number: "79927398713", expected: true},
		{name: "Valid_SimpleCase_18", number: "18", expected: true},
		{name: "Valid_SingleZero", number: "0", expected: true},
		{name: "Invalid_WrongCheckDigit", number: "378282246310004", expected: false},
		{name: "Invalid_MissingDigit", number: "411111111111111", expected: false},
		{name: "Invalid_SingleDigit", number: "5", expected: false},
		{name: "Error_Empty", number: "", expectedErr: cardDomain.ErrEmptyNumber},
		{name: "Error_ContainsLetters", number: "453201511283036a", expectedErr: cardDomain.ErrMalformedNumber},
		{name: "Error_ContainsSpaces", number: "4532 0151 1283 0366", expectedErr: cardDomain.ErrMalformedNumber},
		{name: "Error_NegativeSign", number: "-4111111111111111", expectedErr: cardDomain.ErrMalformedNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := PassesLuhnCheck(tt.number)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.False(t, valid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
		})
	}
}

func TestPassesLuhnCheck_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		valid, err := PassesLuhnCheck("4111111111111111")
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = PassesLuhnCheck("378282246310004")
		require.NoError(t, err)
		assert.False(t, valid)
	}
}

func TestCalculateCheckDigit(t *testing.T) {
	tests := []struct {
		name          string
		digits        string
		expectedDigit int
	}{
		{name: "SimpleCase_1", digits: "1", expectedDigit: 8},
		{name: "Wikipedia_7992739871", digits: "7992739871", expectedDigit: 3},
		{name: "Amex_37828224631000", digits: "37828224631000", expectedDigit: 5},
		{name: "Visa_411111111111111", digits: "411111111111111", expectedDigit: 1},
		{name: "AllZeros", digits: "000000", expectedDigit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digit, err := CalculateCheckDigit(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDigit, digit)

			valid, err := PassesLuhnCheck(tt.digits + string(rune('0'+digit)))
			require.NoError(t, err)
			assert.True(t, valid)
		})
	}

	t.Run("Error_Empty", func(t *testing.T) {
		_, err := CalculateCheckDigit("")
		assert.ErrorIs(t, err, cardDomain.ErrEmptyNumber)
	})

	t.Run("Error_Malformed", func(t *testing.T) {
		_, err := CalculateCheckDigit("12x4")
		assert.ErrorIs(t, err, cardDomain.ErrMalformedNumber)
	})
}
