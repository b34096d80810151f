package domain

import (
	"fmt"
	"slices"
	"strconv"
)

// IssuerRule binds a brand to the prefixes and total lengths its numbers may have.
// Rules are immutable once built; accessors hand out copies.
type IssuerRule struct {
	brand         Brand
	ranges        []NumericRange
	prefixes      []int64
	lengths       []int
	maxPrefixSize int
}

// NewIssuerRule expands the ranges into a prefix set and validates the lengths.
func NewIssuerRule(brand Brand, ranges []*NumericRange, lengths []int) (*IssuerRule, error) {
	if err := brand.Validate(); err != nil {
		return nil, err
	}

	prefixes, err := ExpandRanges(ranges...)
	if err != nil {
		return nil, fmt.Errorf("failed to expand prefixes for %s: %w", brand, err)
	}
	for _, p := range prefixes {
		if err := ValidatePrefix(p); err != nil {
			return nil, err
		}
	}

	if len(lengths) == 0 {
		return nil, ErrLengthsRequired
	}
	sortedLengths := slices.Clone(lengths)
	slices.Sort(sortedLengths)
	sortedLengths = slices.Compact(sortedLengths)
	for _, l := range sortedLengths {
		if err := ValidateLength(l); err != nil {
			return nil, err
		}
	}

	kept := make([]NumericRange, 0, len(ranges))
	for _, r := range ranges {
		if r != nil {
			kept = append(kept, *r)
		}
	}

	return &IssuerRule{
		brand:         brand,
		ranges:        kept,
		prefixes:      prefixes,
		lengths:       sortedLengths,
		maxPrefixSize: DigitCount(prefixes[len(prefixes)-1]),
	}, nil
}

// Brand returns the brand the rule belongs to.
func (r *IssuerRule) Brand() Brand {
	return r.brand
}

// Ranges returns the ranges the prefix set was expanded from.
func (r *IssuerRule) Ranges() []NumericRange {
	return slices.Clone(r.ranges)
}

// Prefixes returns the sorted prefix set.
func (r *IssuerRule) Prefixes() []int64 {
	return slices.Clone(r.prefixes)
}

// Lengths returns the sorted set of valid total lengths.
func (r *IssuerRule) Lengths() []int {
	return slices.Clone(r.lengths)
}

// PrefixCount returns the size of the prefix set.
func (r *IssuerRule) PrefixCount() int {
	return len(r.prefixes)
}

// PrefixAt returns the i-th prefix in ascending order.
func (r *IssuerRule) PrefixAt(i int) int64 {
	return r.prefixes[i]
}

// HasPrefix reports whether p belongs to the prefix set.
func (r *IssuerRule) HasPrefix(p int64) bool {
	_, found := slices.BinarySearch(r.prefixes, p)
	return found
}

// HasLength reports whether l is one of the valid lengths.
func (r *IssuerRule) HasLength(l int) bool {
	return slices.Contains(r.lengths, l)
}

// Matches reports whether number has a valid length and starts with one of the rule's prefixes.
// It does not check the Luhn digit.
func (r *IssuerRule) Matches(number string) bool {
	if !r.HasLength(len(number)) || number == "" || number[0] == '0' {
		return false
	}
	for size := 1; size <= r.maxPrefixSize && size <= len(number); size++ {
		p, err := strconv.ParseInt(number[:size], 10, 64)
		if err != nil {
			return false
		}
		if r.HasPrefix(p) {
			return true
		}
	}
	return false
}
