package series

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tabby/tabby/internal/errors"
)

func TestAnyAllDefaultPredicate(t *testing.T) {
	tests := []struct {
		name string
		s    *Series
		any  bool
		all  bool
	}{
		{name: "all present", s: Of(float64(1), "x"), any: true, all: true},
		{name: "some missing", s: Of(float64(1), nil), any: true, all: false},
		{name: "all missing", s: Of(nil, nil), any: false, all: false},
		{name: "empty", s: Of(), any: false, all: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.any, tt.s.Any())
			assert.Equal(t, tt.all, tt.s.All())
		})
	}
}

func TestAnyAllCustomPredicate(t *testing.T) {
	s := Of(float64(1), float64(5), float64(9))
	big := func(v any) bool { return v.(float64) > 4 }

	assert.True(t, s.Any(big))
	assert.False(t, s.All(big))
	assert.True(t, s.All(func(v any) bool { return v.(float64) > 0 }))
}

func TestReduce(t *testing.T) {
	s := Of(float64(1), float64(2), float64(3))
	add := func(acc, v any) any { return acc.(float64) + v.(float64) }

	total, err := s.Reduce(add)
	require.NoError(t, err)
	assert.Equal(t, float64(6), total)

	total, err = s.Reduce(add, float64(10))
	require.NoError(t, err)
	assert.Equal(t, float64(16), total)
}

func TestReduceFoldsInIndexOrder(t *testing.T) {
	s := Of("a", "b", "c")
	joined, err := s.Reduce(func(acc, v any) any { return acc.(string) + v.(string) })
	require.NoError(t, err)
	assert.Equal(t, "abc", joined)
}

func TestReduceEmpty(t *testing.T) {
	empty := Of()
	add := func(acc, v any) any { return acc }

	_, err := empty.Reduce(add)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidArgument))

	seed, err := empty.Reduce(add, "seed")
	require.NoError(t, err)
	assert.Equal(t, "seed", seed)
}

func TestUnique(t *testing.T) {
	s := Of(float64(3), float64(1), float64(3), float64(2), float64(1))
	assert.Equal(t, []any{float64(3), float64(1), float64(2)}, s.Unique())

	assert.Equal(t, []any{}, Of().Unique())
}

func TestSum(t *testing.T) {
	s := Of(float64(1), float64(2), float64(3))
	total, err := s.Sum()
	require.NoError(t, err)
	assert.Equal(t, float64(6), total)

	// Sum of an empty Series is 0, not an error.
	total, err = Of().Sum()
	require.NoError(t, err)
	assert.Equal(t, float64(0), total)
}

func TestSumTypeMismatch(t *testing.T) {
	s := Of(float64(1), "x", float64(3))
	_, err := s.Sum()
	assert.True(t, stderrors.Is(err, errors.ErrTypeMismatch))
	assert.EqualError(t, err, "TypeMismatch: Sum failed: value x at index 1 is not numeric")
}

func TestNumericAggregations(t *testing.T) {
	s := Of(float64(4), float64(1), float64(3), float64(2))

	minVal, err := s.Min()
	require.NoError(t, err)
	assert.Equal(t, float64(1), minVal)

	maxVal, err := s.Max()
	require.NoError(t, err)
	assert.Equal(t, float64(4), maxVal)

	ext, err := s.Extent()
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1, 4}, ext)

	mean, err := s.Mean()
	require.NoError(t, err)
	assert.Equal(t, 2.5, mean)

	median, err := s.Median()
	require.NoError(t, err)
	assert.Equal(t, 2.5, median)
}

func TestAggregationsCoercePerCall(t *testing.T) {
	// Coercion is applied per call, not persisted: the raw storage keeps
	// its bool, which counts as 1 numerically.
	s := Of(true, float64(2))

	total, err := s.Sum()
	require.NoError(t, err)
	assert.Equal(t, float64(3), total)
	assert.Equal(t, []any{true, float64(2)}, s.Data())
}

func TestStd(t *testing.T) {
	s := Of(float64(2), float64(4), float64(4), float64(4), float64(5), float64(5), float64(7), float64(9))
	dev, err := s.Std()
	require.NoError(t, err)
	assert.InDelta(t, 2.13809, dev, 1e-5)
}

func TestStdNeedsTwoValues(t *testing.T) {
	_, err := Of(float64(1)).Std()
	assert.True(t, stderrors.Is(err, errors.ErrEmptySeries))
}

func TestAggregationsOnEmptySeries(t *testing.T) {
	empty := Of()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "Min", call: func() error { _, err := empty.Min(); return err }},
		{name: "Max", call: func() error { _, err := empty.Max(); return err }},
		{name: "Extent", call: func() error { _, err := empty.Extent(); return err }},
		{name: "Mean", call: func() error { _, err := empty.Mean(); return err }},
		{name: "Median", call: func() error { _, err := empty.Median(); return err }},
		{name: "Std", call: func() error { _, err := empty.Std(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, stderrors.Is(tt.call(), errors.ErrEmptySeries))
		})
	}
}

func TestAggregationsRejectNonNumeric(t *testing.T) {
	s := Of(float64(1), "abc")

	tests := []struct {
		name string
		call func() error
	}{
		{name: "Min", call: func() error { _, err := s.Min(); return err }},
		{name: "Max", call: func() error { _, err := s.Max(); return err }},
		{name: "Extent", call: func() error { _, err := s.Extent(); return err }},
		{name: "Mean", call: func() error { _, err := s.Mean(); return err }},
		{name: "Median", call: func() error { _, err := s.Median(); return err }},
		{name: "Std", call: func() error { _, err := s.Std(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, stderrors.Is(tt.call(), errors.ErrTypeMismatch))
		})
	}
}
