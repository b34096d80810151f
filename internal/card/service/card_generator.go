package service

import (
	"strconv"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

type cardGenerator struct {
	random RandomSource
}

// NewCardGenerator creates a card number generator drawing digits from random.
// A nil random falls back to NewCryptoSource.
func NewCardGenerator(random RandomSource) CardGenerator {
	if random == nil {
		random = NewCryptoSource()
	}
	return &cardGenerator{random: random}
}

// Generate fills the gap between prefix and the check digit with uniform random digits 0-9.
func (g *cardGenerator) Generate(prefix int64, length int) (string, error) {
	if err := cardDomain.ValidatePrefix(prefix); err != nil {
		return "", err
	}
	if err := cardDomain.ValidateLength(length); err != nil {
		return "", err
	}
	if err := cardDomain.ValidatePrefixFits(prefix, length); err != nil {
		return "", err
	}

	number := make([]byte, 0, length)
	number = strconv.AppendInt(number, prefix, 10)
	for len(number) < length-1 {
		//nolint:gosec // IntN(10) is bounded to [0,9]
		number = append(number, byte('0'+g.random.IntN(10)))
	}

	digits := string(number)
	number = append(number, byte('0'+checkDigit(luhnSum(digits, len(digits)-1))))

	return string(number), nil
}

// GenerateWithLengths draws the length independently for every call.
func (g *cardGenerator) GenerateWithLengths(prefix int64, lengths []int) (string, error) {
	if len(lengths) == 0 {
		return "", cardDomain.ErrLengthsRequired
	}
	return g.Generate(prefix, lengths[g.random.IntN(len(lengths))])
}

// GenerateForRule selects a prefix and a length independently, each uniformly over the rule's set.
func (g *cardGenerator) GenerateForRule(rule *cardDomain.IssuerRule) (string, error) {
	if rule == nil {
		return "", cardDomain.ErrRuleRequired
	}
	prefix := rule.PrefixAt(g.random.IntN(rule.PrefixCount()))
	return g.GenerateWithLengths(prefix, rule.Lengths())
}
