package domain

import (
	"fmt"
	"slices"
)

// NumericRange is a closed interval [Start, End] of non-negative integers.
type NumericRange struct {
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end"   yaml:"end"`
}

// NewRange returns the closed range [start, end].
func NewRange(start, end int64) *NumericRange {
	return &NumericRange{Start: start, End: end}
}

// Validate checks that both bounds are non-negative and ordered.
func (r NumericRange) Validate() error {
	if r.Start < 0 || r.End < 0 || r.Start > r.End {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Size returns how many integers the range covers.
func (r NumericRange) Size() int {
	return int(r.End - r.Start + 1)
}

// ExpandRanges returns every integer covered by the given ranges, sorted and without duplicates.
// Nil ranges are skipped; overlapping ranges are merged. Returns ErrNoRanges when no range is
// supplied or all of them are nil.
func ExpandRanges(ranges ...*NumericRange) ([]int64, error) {
	total := 0
	for _, r := range ranges {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		total += r.Size()
	}
	if total == 0 {
		return nil, ErrNoRanges
	}

	values := make([]int64, 0, total)
	for _, r := range ranges {
		if r == nil {
			continue
		}
		for v := r.Start; v <= r.End; v++ {
			values = append(values, v)
		}
	}

	slices.Sort(values)
	return slices.Compact(values), nil
}
