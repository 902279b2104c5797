package series

import (
	"reflect"

	"github.com/go-tabby/tabby/internal/errors"
	"github.com/go-tabby/tabby/internal/stats"
	"github.com/go-tabby/tabby/internal/value"
)

// notNA is the default predicate for Any and All: any non-missing value
// passes.
func notNA(v any) bool {
	return !value.IsNA(v)
}

// Any reports whether the condition holds for at least one value. With no
// condition, any non-missing value passes.
func (s *Series) Any(condition ...func(any) bool) bool {
	cond := notNA
	if len(condition) > 0 && condition[0] != nil {
		cond = condition[0]
	}
	for _, v := range s.values {
		if cond(v) {
			return true
		}
	}
	return false
}

// All reports whether the condition holds for every value. With no
// condition, any non-missing value passes.
func (s *Series) All(condition ...func(any) bool) bool {
	cond := notNA
	if len(condition) > 0 && condition[0] != nil {
		cond = condition[0]
	}
	for _, v := range s.values {
		if !cond(v) {
			return false
		}
	}
	return true
}

// Reduce left-folds the values in index order. Without an initial value
// the first element seeds the accumulator and folding starts from the
// second; an empty Series with no initial value fails.
func (s *Series) Reduce(fn func(acc, v any) any, initial ...any) (any, error) {
	var acc any
	start := 0
	switch {
	case len(initial) > 0:
		acc = initial[0]
	case len(s.values) > 0:
		acc = s.values[0]
		start = 1
	default:
		return nil, errors.NewInvalidArgumentError("Reduce", "initial",
			"reduce of an empty Series requires an initial value")
	}
	for _, v := range s.values[start:] {
		acc = fn(acc, v)
	}
	return acc, nil
}

// comparableValue reports whether strict == comparison is defined for the
// value. Nested slices and maps are not comparable; under strict equality
// each such structure counts as distinct anyway.
func comparableValue(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

// equalStrict compares two values under strict identity. Values without a
// defined == never compare equal.
func equalStrict(a, b any) bool {
	if !comparableValue(a) || !comparableValue(b) {
		return false
	}
	return a == b
}

// distinctValues keeps the first occurrence of each distinct value in
// first-seen order. NaN never equals itself, so every NaN survives, as
// strict equality dictates.
func distinctValues(values []any) []any {
	seen := make(map[any]struct{}, len(values))
	out := make([]any, 0, len(values))
	for _, v := range values {
		if comparableValue(v) {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
		}
		out = append(out, v)
	}
	return out
}

// Unique returns the first-seen distinct values as a plain slice, not
// wrapped in a Series.
func (s *Series) Unique() []any {
	return distinctValues(s.values)
}

// Numeric aggregations. Each validates that every value is
// numeric-coercible before computing anything, failing with a
// TypeMismatch error otherwise. The coerced view is per-call. On an
// empty Series they fail with an EmptySeries error, except Sum, which
// returns 0.

func ident(f float64) float64 { return f }

// Sum returns the total of the coerced values; 0 on an empty Series.
func (s *Series) Sum() (float64, error) {
	view, err := s.numericView("Sum")
	if err != nil {
		return 0, err
	}
	return stats.Sum(view, ident), nil
}

// Min returns the smallest coerced value.
func (s *Series) Min() (float64, error) {
	view, err := s.numericView("Min")
	if err != nil {
		return 0, err
	}
	v, ok := stats.Min(view, ident)
	if !ok {
		return 0, errors.NewEmptySeriesError("Min")
	}
	return v, nil
}

// Max returns the largest coerced value.
func (s *Series) Max() (float64, error) {
	view, err := s.numericView("Max")
	if err != nil {
		return 0, err
	}
	v, ok := stats.Max(view, ident)
	if !ok {
		return 0, errors.NewEmptySeriesError("Max")
	}
	return v, nil
}

// Extent returns the [min, max] pair of the coerced values.
func (s *Series) Extent() ([2]float64, error) {
	view, err := s.numericView("Extent")
	if err != nil {
		return [2]float64{}, err
	}
	ext, ok := stats.Extent(view, ident)
	if !ok {
		return [2]float64{}, errors.NewEmptySeriesError("Extent")
	}
	return ext, nil
}

// Mean returns the arithmetic mean of the coerced values.
func (s *Series) Mean() (float64, error) {
	view, err := s.numericView("Mean")
	if err != nil {
		return 0, err
	}
	v, ok := stats.Mean(view, ident)
	if !ok {
		return 0, errors.NewEmptySeriesError("Mean")
	}
	return v, nil
}

// Median returns the middle of the sorted coerced values, interpolating
// for even lengths.
func (s *Series) Median() (float64, error) {
	view, err := s.numericView("Median")
	if err != nil {
		return 0, err
	}
	v, ok := stats.Median(view, ident)
	if !ok {
		return 0, errors.NewEmptySeriesError("Median")
	}
	return v, nil
}

// Std returns the sample standard deviation of the coerced values.
func (s *Series) Std() (float64, error) {
	view, err := s.numericView("Std")
	if err != nil {
		return 0, err
	}
	v, ok := stats.Deviation(view, ident)
	if !ok {
		if len(view) == 0 {
			return 0, errors.NewEmptySeriesError("Std")
		}
		return 0, &errors.SeriesError{
			Op:      "Std",
			Kind:    errors.KindEmptySeries,
			Message: "sample standard deviation requires at least two values",
		}
	}
	return v, nil
}
