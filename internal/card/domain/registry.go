package domain

import (
	"fmt"
)

// registry is built once at package initialization and only read afterwards.
var registry = mustBuildRegistry()

type ruleTable struct {
	order []Brand
	rules map[Brand]*IssuerRule
}

type ruleDefinition struct {
	brand   Brand
	ranges  []*NumericRange
	lengths []int
}

// definitions is the issuer numbering table, in presentation order.
var definitions = []ruleDefinition{
	{
		brand:   AmericanExpress,
		ranges:  []*NumericRange{NewRange(34, 34), NewRange(37, 37)},
		lengths: []int{15},
	},
	{
		brand:   Visa,
		ranges:  []*NumericRange{NewRange(4, 4)},
		lengths: []int{13, 16, 19},
	},
	{
		brand:   Mastercard,
		ranges:  []*NumericRange{NewRange(51, 55), NewRange(2221, 2720)},
		lengths: []int{16},
	},
	{
		brand: Discover,
		ranges: []*NumericRange{
			NewRange(65, 65),
			NewRange(644, 649),
			NewRange(6011, 6011),
			NewRange(622126, 622925),
		},
		lengths: []int{16, 19},
	},
}

func mustBuildRegistry() *ruleTable {
	table := &ruleTable{
		order: make([]Brand, 0, len(definitions)),
		rules: make(map[Brand]*IssuerRule, len(definitions)),
	}
	for _, def := range definitions {
		rule, err := NewIssuerRule(def.brand, def.ranges, def.lengths)
		if err != nil {
			panic(fmt.Sprintf("invalid issuer rule for %s: %v", def.brand, err))
		}
		table.order = append(table.order, def.brand)
		table.rules[def.brand] = rule
	}
	return table
}

// Brands returns every registered brand in table order.
func Brands() []Brand {
	brands := make([]Brand, len(registry.order))
	copy(brands, registry.order)
	return brands
}

// Rule returns the issuer rule of a registered brand.
func Rule(brand Brand) (*IssuerRule, error) {
	if err := brand.Validate(); err != nil {
		return nil, err
	}
	return registry.rules[brand], nil
}

// Rules returns the issuer rules of every registered brand in table order.
func Rules() []*IssuerRule {
	rules := make([]*IssuerRule, 0, len(registry.order))
	for _, b := range registry.order {
		rules = append(rules, registry.rules[b])
	}
	return rules
}

// Identify returns the brands whose prefix and length rules both match number.
func Identify(number string) []Brand {
	var brands []Brand
	for _, b := range registry.order {
		if registry.rules[b].Matches(number) {
			brands = append(brands, b)
		}
	}
	return brands
}
