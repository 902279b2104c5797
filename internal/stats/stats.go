// Package stats provides the numeric aggregation primitives consumed by
// the Series core: sum, min, max, extent, mean, median and sample
// deviation over a sequence with an accessor function. Empty input is
// reported through the ok result (sum of nothing is 0). The math is
// delegated to gonum.
package stats

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// materialize applies the accessor to every element.
func materialize[T any](xs []T, f func(T) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Sum returns the total of the accessed values; 0 for empty input.
func Sum[T any](xs []T, f func(T) float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(materialize(xs, f))
}

// Min returns the smallest accessed value; ok is false for empty input.
func Min[T any](xs []T, f func(T) float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return floats.Min(materialize(xs, f)), true
}

// Max returns the largest accessed value; ok is false for empty input.
func Max[T any](xs []T, f func(T) float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return floats.Max(materialize(xs, f)), true
}

// Extent returns the [min, max] pair; ok is false for empty input.
func Extent[T any](xs []T, f func(T) float64) ([2]float64, bool) {
	if len(xs) == 0 {
		return [2]float64{}, false
	}
	vs := materialize(xs, f)
	return [2]float64{floats.Min(vs), floats.Max(vs)}, true
}

// Mean returns the arithmetic mean; ok is false for empty input.
func Mean[T any](xs []T, f func(T) float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return stat.Mean(materialize(xs, f), nil), true
}

// Median returns the middle value of the sorted sequence, interpolating
// between the two middle values for even lengths; ok is false for empty
// input.
func Median[T any](xs []T, f func(T) float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	vs := materialize(xs, f)
	slices.Sort(vs)
	mid := len(vs) / 2
	if len(vs)%2 == 1 {
		return vs[mid], true
	}
	return (vs[mid-1] + vs[mid]) / 2, true
}

// Deviation returns the sample standard deviation (n-1 divisor); ok is
// false when fewer than two values are available.
func Deviation[T any](xs []T, f func(T) float64) (float64, bool) {
	if len(xs) < 2 {
		return 0, false
	}
	return stat.StdDev(materialize(xs, f), nil), true
}
