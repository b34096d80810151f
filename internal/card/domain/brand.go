package domain

import (
	"fmt"
	"strings"
)

// Brand identifies a card network and, through the registry, its numbering rules.
type Brand string

const (
	AmericanExpress Brand = "AMERICAN_EXPRESS"
	Visa            Brand = "VISA"
	Mastercard      Brand = "MASTERCARD"
	Discover        Brand = "DISCOVER"
)

// brandAliases maps common shorthand to registered brands.
var brandAliases = map[string]Brand{
	"AMEX": AmericanExpress,
	"MC":   Mastercard,
}

// Validate checks if the brand is one of the registered brands.
func (b Brand) Validate() error {
	switch b {
	case AmericanExpress, Visa, Mastercard, Discover:
		return nil
	case "":
		return ErrBrandRequired
	default:
		return fmt.Errorf("%w: %s", ErrUnknownBrand, string(b))
	}
}

// String returns the string representation of the brand.
func (b Brand) String() string {
	return string(b)
}

// ParseBrand converts user input such as "visa", "american-express" or "amex" into a Brand.
func ParseBrand(value string) (Brand, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return "", ErrBrandRequired
	}
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	if alias, ok := brandAliases[normalized]; ok {
		return alias, nil
	}

	brand := Brand(normalized)
	if err := brand.Validate(); err != nil {
		return "", err
	}
	return brand, nil
}

// ParseBrands converts brand names into registered brands, keeping input order.
func ParseBrands(names []string) ([]Brand, error) {
	brands := make([]Brand, 0, len(names))
	for _, name := range names {
		brand, err := ParseBrand(name)
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, nil
}

// UniqueBrands removes repeated and empty brands, keeping the first occurrence of each.
func UniqueBrands(brands []Brand) []Brand {
	seen := make(map[Brand]struct{}, len(brands))
	unique := make([]Brand, 0, len(brands))
	for _, b := range brands {
		if b == "" {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		unique = append(unique, b)
	}
	return unique
}
