// Package series implements the Series core: an ordered, mutable,
// positionally-indexed sequence of heterogeneous-but-coercible values.
// Construction deep-copies its input and applies the numeric coercion
// strategy; sharing storage between instances is explicit through Share.
// Every transform comes in a pure form returning a new Series and an
// InPlace form mutating the receiver, and all argument checking runs
// through the validation gate before any state changes.
package series

import (
	"fmt"

	"github.com/go-tabby/tabby/internal/errors"
	"github.com/go-tabby/tabby/internal/validation"
	"github.com/go-tabby/tabby/internal/value"
)

// Series is an ordered, positionally-indexed value sequence. Values are
// one of float64, string, bool, nil (missing) or a nested structure;
// numeric-looking non-bool inputs are normalized to float64 on the way in.
type Series struct {
	values []any
	coerce value.Coercer
}

// Option configures a Series under construction.
type Option func(*Series)

// WithCoercer overrides the construction-time coercion strategy.
func WithCoercer(c value.Coercer) Option {
	return func(s *Series) {
		if c != nil {
			s.coerce = c
		}
	}
}

// New creates a Series from a slice of values. The input is deep-copied
// (nested structures are not aliased with caller-owned data) and each
// element runs through the coercion strategy. A nil slice yields an empty
// Series.
func New(values []any, opts ...Option) *Series {
	s := &Series{coerce: value.TryCoerceNumeric}
	for _, opt := range opts {
		opt(s)
	}

	s.values = make([]any, len(values))
	for i, v := range values {
		s.values[i] = s.coerce(value.DeepCopy(v))
	}
	return s
}

// Of creates a Series from individual values; a variadic convenience
// around New.
func Of(values ...any) *Series {
	return New(values)
}

// fromOwned wraps an already-coerced value slice without copying. Used by
// transforms whose output is built from this Series' own values.
func fromOwned(values []any, c value.Coercer) *Series {
	return &Series{values: values, coerce: c}
}

// Share returns a Series aliasing the same underlying storage: in-place
// mutation of either instance is visible through both. Callers that want
// isolation use Clone.
func (s *Series) Share() *Series {
	return &Series{values: s.values, coerce: s.coerce}
}

// Clone returns an independent Series via a full coercing copy.
func (s *Series) Clone() *Series {
	return New(s.values, WithCoercer(s.coerce))
}

// Len returns the number of values.
func (s *Series) Len() int {
	return len(s.values)
}

// Empty reports whether the Series holds no values.
func (s *Series) Empty() bool {
	return len(s.values) == 0
}

// Data returns the live underlying storage. Mutating the returned slice
// mutates the Series; callers that want a detached copy use Clone.
func (s *Series) Data() []any {
	return s.values
}

// Get returns the value at an in-range position.
func (s *Series) Get(index int) (any, error) {
	if err := validation.ValidateIndex(index, len(s.values), "Get", "index"); err != nil {
		return nil, err
	}
	return s.values[index], nil
}

// Set replaces the value at an in-range position. Validation runs before
// the assignment, so a failed Set never mutates.
func (s *Series) Set(index int, v any) error {
	if err := validation.ValidateIndex(index, len(s.values), "Set", "index"); err != nil {
		return err
	}
	s.values[index] = v
	return nil
}

// First returns the head value; ok is false on an empty Series.
func (s *Series) First() (any, bool) {
	if len(s.values) == 0 {
		return nil, false
	}
	return s.values[0], true
}

// Last returns the tail value; ok is false on an empty Series.
func (s *Series) Last() (any, bool) {
	if len(s.values) == 0 {
		return nil, false
	}
	return s.values[len(s.values)-1], true
}

// Find returns the first value the condition holds for, scanning in index
// order. Implemented as filter-then-take-first so the result always equals
// the head of a full filter pass.
func (s *Series) Find(condition func(any) bool) (any, bool) {
	matches := filterValues(s.values, condition)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// numericView coerces every value to float64 for the numeric operations.
// The coerced view is per-call and never persisted back into storage.
func (s *Series) numericView(op string) ([]float64, error) {
	view, bad := value.NumericView(s.values)
	if bad >= 0 {
		message := fmt.Sprintf("value %v at index %d is not numeric", s.values[bad], bad)
		return nil, errors.NewTypeMismatchError(op, message)
	}
	return view, nil
}
