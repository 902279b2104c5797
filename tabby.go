// Package tabby provides a small in-memory tabular data toolkit. Its
// core type is Series: an ordered, mutable, positionally-indexed sequence
// of heterogeneous-but-coercible values with accessors, structural
// transforms, aggregations, iteration cursors and CSV/JSON export.
// This package is the sole public API of the library.
//
// Construction deep-copies its input and coerces numeric-looking values
// to numbers. Storage sharing between instances only happens through the
// explicit Share method; Clone always produces an independent copy.
// Every structural transform comes in two forms: a pure form returning a
// new Series, and an InPlace form that mutates the receiver and returns
// it for chaining.
package tabby

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/go-tabby/tabby/internal/config"
	"github.com/go-tabby/tabby/internal/errors"
	tabbyio "github.com/go-tabby/tabby/internal/io"
	"github.com/go-tabby/tabby/internal/series"
	"github.com/go-tabby/tabby/internal/value"
)

// Series is the public type for a single data column.
// It wraps the internal series.Series to hide implementation details.
type Series struct {
	s *series.Series
}

// Coercer is a pure element-wise coercion strategy applied at
// construction time.
type Coercer = value.Coercer

// TryCoerceNumeric is the default coercion strategy: non-bool values
// whose textual form parses as a finite number become numbers.
func TryCoerceNumeric(v any) any {
	return value.TryCoerceNumeric(v)
}

// IsNA reports whether a value is classified as missing.
func IsNA(v any) bool {
	return value.IsNA(v)
}

// Error is the standardized error type returned by all Series operations.
type Error = errors.SeriesError

// Predefined error sentinels for errors.Is checks.
var (
	ErrInvalidArgument = errors.ErrInvalidArgument
	ErrTypeMismatch    = errors.ErrTypeMismatch
	ErrOperandMismatch = errors.ErrOperandMismatch
	ErrEmptySeries     = errors.ErrEmptySeries
)

// Option configures a Series under construction.
type Option = series.Option

// WithCoercer overrides the construction-time coercion strategy.
func WithCoercer(c Coercer) Option {
	return series.WithCoercer(c)
}

// SortOptions configures Sort direction.
type SortOptions = series.SortOptions

// CountsOptions configures Counts and Frequencies ordering.
type CountsOptions = series.CountsOptions

// ValueCount pairs a value with its occurrence count.
type ValueCount = series.ValueCount

// ValueFrequency pairs a value with its relative frequency.
type ValueFrequency = series.ValueFrequency

// CSVOptions configures CSV output.
type CSVOptions = tabbyio.CSVOptions

// JSONOptions configures JSON output.
type JSONOptions = tabbyio.JSONOptions

// Config holds the global rendering and IO configuration.
type Config = config.Config

// GetConfig returns a copy of the current global configuration.
func GetConfig() Config {
	return config.GetGlobalConfig()
}

// SetConfig replaces the global configuration after validating it.
func SetConfig(c Config) error {
	return config.SetGlobalConfig(c)
}

// NewSeries creates a Series from a slice of values through a coercing
// deep copy. A nil slice yields an empty Series.
func NewSeries(values []any, opts ...Option) *Series {
	return &Series{s: series.New(values, opts...)}
}

// Of creates a Series from individual values.
func Of(values ...any) *Series {
	return &Series{s: series.Of(values...)}
}

// FromArrow imports an Apache Arrow array through constructor coercion.
func FromArrow(arr arrow.Array, opts ...Option) (*Series, error) {
	s, err := series.FromArrow(arr, opts...)
	if err != nil {
		return nil, err
	}
	return &Series{s: s}, nil
}

func wrap(s *series.Series) *Series {
	return &Series{s: s}
}

// Share returns a Series aliasing the same underlying storage.
func (t *Series) Share() *Series { return wrap(t.s.Share()) }

// Clone returns an independent Series via a full coercing copy.
func (t *Series) Clone() *Series { return wrap(t.s.Clone()) }

// Accessors

// Len returns the number of values.
func (t *Series) Len() int { return t.s.Len() }

// Empty reports whether the Series holds no values.
func (t *Series) Empty() bool { return t.s.Empty() }

// Data returns the live underlying storage.
func (t *Series) Data() []any { return t.s.Data() }

// Get returns the value at an in-range position.
func (t *Series) Get(index int) (any, error) { return t.s.Get(index) }

// Set replaces the value at an in-range position.
func (t *Series) Set(index int, v any) error { return t.s.Set(index, v) }

// First returns the head value; ok is false on an empty Series.
func (t *Series) First() (any, bool) { return t.s.First() }

// Last returns the tail value; ok is false on an empty Series.
func (t *Series) Last() (any, bool) { return t.s.Last() }

// Find returns the first value the condition holds for in index order.
func (t *Series) Find(condition func(any) bool) (any, bool) { return t.s.Find(condition) }

// Iteration

// ValueIterator is a fresh, independent pull cursor over values.
type ValueIterator = series.ValueIterator

// ItemIterator is a fresh, independent pull cursor over (index, value)
// pairs.
type ItemIterator = series.ItemIterator

// Values returns a new value cursor starting at index 0.
func (t *Series) Values() *ValueIterator { return t.s.Values() }

// Items returns a new item cursor starting at index 0.
func (t *Series) Items() *ItemIterator { return t.s.Items() }

// ForEach invokes the callback for each element in index order.
func (t *Series) ForEach(fn func(v any, index int, data []any)) { t.s.ForEach(fn) }

// Map returns a new Series built by applying the callback element-wise
// through constructor coercion.
func (t *Series) Map(fn func(any) any) *Series { return wrap(t.s.Map(fn)) }

// Structural transforms

// Append returns a new Series with the values concatenated to the end.
func (t *Series) Append(values ...any) *Series { return wrap(t.s.Append(values...)) }

// AppendInPlace concatenates the values to the end of the receiver.
func (t *Series) AppendInPlace(values ...any) *Series {
	t.s.AppendInPlace(values...)
	return t
}

// Insert returns a new Series with the values spliced in before index.
func (t *Series) Insert(index int, values ...any) (*Series, error) {
	s, err := t.s.Insert(index, values...)
	if err != nil {
		return nil, err
	}
	return wrap(s), nil
}

// InsertInPlace splices the values into the receiver before index.
func (t *Series) InsertInPlace(index int, values ...any) (*Series, error) {
	if _, err := t.s.InsertInPlace(index, values...); err != nil {
		return nil, err
	}
	return t, nil
}

// Concat returns a new Series with the other Series' values appended.
func (t *Series) Concat(other *Series) (*Series, error) {
	s, err := t.s.Concat(unwrap(other))
	if err != nil {
		return nil, err
	}
	return wrap(s), nil
}

// ConcatInPlace appends the other Series' values to the receiver.
func (t *Series) ConcatInPlace(other *Series) (*Series, error) {
	if _, err := t.s.ConcatInPlace(unwrap(other)); err != nil {
		return nil, err
	}
	return t, nil
}

func unwrap(t *Series) *series.Series {
	if t == nil {
		return nil
	}
	return t.s
}

// Slice returns a new Series over [start, end); negative offsets count
// from the end and out-of-bounds offsets clamp silently.
func (t *Series) Slice(start, end int) *Series { return wrap(t.s.Slice(start, end)) }

// SliceFrom is Slice with the end defaulted to the length.
func (t *Series) SliceFrom(start int) *Series { return wrap(t.s.SliceFrom(start)) }

// SliceInPlace narrows the receiver to [start, end).
func (t *Series) SliceInPlace(start, end int) *Series {
	t.s.SliceInPlace(start, end)
	return t
}

// Head returns the first n values.
func (t *Series) Head(n int) *Series { return wrap(t.s.Head(n)) }

// Tail returns the last n values.
func (t *Series) Tail(n int) *Series { return wrap(t.s.Tail(n)) }

// Filter returns a new Series keeping values the predicate holds for.
func (t *Series) Filter(pred func(any) bool) *Series { return wrap(t.s.Filter(pred)) }

// FilterInPlace keeps only values the predicate holds for.
func (t *Series) FilterInPlace(pred func(any) bool) *Series {
	t.s.FilterInPlace(pred)
	return t
}

// Drop returns a new Series keeping values the predicate does not hold
// for.
func (t *Series) Drop(pred func(any) bool) *Series { return wrap(t.s.Drop(pred)) }

// DropInPlace removes values the predicate holds for.
func (t *Series) DropInPlace(pred func(any) bool) *Series {
	t.s.DropInPlace(pred)
	return t
}

// DropNA returns a new Series without missing and otherwise-falsy
// values; 0 and false are retained unless an explicit keep list is given.
func (t *Series) DropNA(keep ...any) *Series { return wrap(t.s.DropNA(keep...)) }

// DropNAInPlace removes missing and otherwise-falsy values.
func (t *Series) DropNAInPlace(keep ...any) *Series {
	t.s.DropNAInPlace(keep...)
	return t
}

// DropDuplicates returns a new Series keeping the first occurrence of
// each distinct value.
func (t *Series) DropDuplicates() *Series { return wrap(t.s.DropDuplicates()) }

// DropDuplicatesInPlace keeps the first occurrence of each distinct
// value.
func (t *Series) DropDuplicatesInPlace() *Series {
	t.s.DropDuplicatesInPlace()
	return t
}

// Sort returns a new Series sorted numerically ascending, descending
// with Reverse.
func (t *Series) Sort(opts ...SortOptions) *Series { return wrap(t.s.Sort(opts...)) }

// SortInPlace sorts the receiver.
func (t *Series) SortInPlace(opts ...SortOptions) *Series {
	t.s.SortInPlace(opts...)
	return t
}

// Shuffle returns a new Series with the values in randomized order.
func (t *Series) Shuffle() *Series { return wrap(t.s.Shuffle()) }

// ShuffleInPlace randomizes the order of the receiver's values.
func (t *Series) ShuffleInPlace() *Series {
	t.s.ShuffleInPlace()
	return t
}

// Round returns a new Series with each value replaced by its
// fixed-decimal string representation. Note the results are strings.
func (t *Series) Round(digits int) (*Series, error) {
	s, err := t.s.Round(digits)
	if err != nil {
		return nil, err
	}
	return wrap(s), nil
}

// RoundInPlace replaces the receiver's values under Round rules.
func (t *Series) RoundInPlace(digits int) (*Series, error) {
	if _, err := t.s.RoundInPlace(digits); err != nil {
		return nil, err
	}
	return t, nil
}

// Predicates and reduction

// Any reports whether the condition (default: not missing) holds for at
// least one value.
func (t *Series) Any(condition ...func(any) bool) bool { return t.s.Any(condition...) }

// All reports whether the condition (default: not missing) holds for
// every value.
func (t *Series) All(condition ...func(any) bool) bool { return t.s.All(condition...) }

// Reduce left-folds the values in index order.
func (t *Series) Reduce(fn func(acc, v any) any, initial ...any) (any, error) {
	return t.s.Reduce(fn, initial...)
}

// Unique returns the first-seen distinct values as a plain slice.
func (t *Series) Unique() []any { return t.s.Unique() }

// Counts groups equal values under loose string keys and returns
// value/count pairs.
func (t *Series) Counts(opts ...CountsOptions) []ValueCount { return t.s.Counts(opts...) }

// Frequencies is Counts with each count divided by the length.
func (t *Series) Frequencies(opts ...CountsOptions) []ValueFrequency {
	return t.s.Frequencies(opts...)
}

// Numeric aggregation

// Sum returns the total of the coerced values; 0 on an empty Series.
func (t *Series) Sum() (float64, error) { return t.s.Sum() }

// Min returns the smallest coerced value.
func (t *Series) Min() (float64, error) { return t.s.Min() }

// Max returns the largest coerced value.
func (t *Series) Max() (float64, error) { return t.s.Max() }

// Extent returns the [min, max] pair of the coerced values.
func (t *Series) Extent() ([2]float64, error) { return t.s.Extent() }

// Mean returns the arithmetic mean of the coerced values.
func (t *Series) Mean() (float64, error) { return t.s.Mean() }

// Median returns the middle of the sorted coerced values.
func (t *Series) Median() (float64, error) { return t.s.Median() }

// Std returns the sample standard deviation of the coerced values.
func (t *Series) Std() (float64, error) { return t.s.Std() }

// Serialization

// String renders a tabular preview of the Series.
func (t *Series) String() string { return t.s.String() }

// Show prints the preview to stdout followed by a blank line.
func (t *Series) Show() { t.s.Show() }

// CSVString returns the single-column CSV text.
func (t *Series) CSVString(opts ...CSVOptions) string {
	return tabbyio.CSVText(t.s.Data(), opts...)
}

// ToCSV writes the single-column CSV text to a file.
func (t *Series) ToCSV(path string, opts ...CSVOptions) error {
	return tabbyio.WriteCSVFile(path, t.s.Data(), opts...)
}

// JSONString returns the `{ name: [values] }` JSON text.
func (t *Series) JSONString(opts ...JSONOptions) (string, error) {
	return tabbyio.JSONText(t.s.Data(), opts...)
}

// ToJSON writes the `{ name: [values] }` JSON text to a file.
func (t *Series) ToJSON(path string, opts ...JSONOptions) error {
	return tabbyio.WriteJSONFile(path, t.s.Data(), opts...)
}

// ToArrow exports the Series as an Apache Arrow array; the caller owns
// the returned array and must Release it.
func (t *Series) ToArrow(mem memory.Allocator) arrow.Array { return t.s.ToArrow(mem) }
