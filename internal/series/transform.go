package series

import (
	"math"
	"sort"
	"strconv"
	"time"

	"golang.org/x/exp/rand"

	"github.com/go-tabby/tabby/internal/validation"
	"github.com/go-tabby/tabby/internal/value"
)

// Structural transforms. Every transform has two forms: the pure form
// returns a new Series and leaves the receiver untouched; the InPlace
// form mutates the receiver and returns it for chaining. Validation runs
// before any mutation, so a failed InPlace call leaves prior state intact.

// rng backs Shuffle. Weak randomness is the documented policy; this is
// not a cryptographic shuffle.
var rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

// coerceIncoming prepares caller-supplied values for storage the same way
// construction does: deep copy, then the coercion strategy.
func (s *Series) coerceIncoming(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = s.coerce(value.DeepCopy(v))
	}
	return out
}

// Append returns a new Series with the given values concatenated to the
// end.
func (s *Series) Append(values ...any) *Series {
	incoming := s.coerceIncoming(values)
	out := make([]any, 0, len(s.values)+len(incoming))
	out = append(out, s.values...)
	out = append(out, incoming...)
	return fromOwned(out, s.coerce)
}

// AppendInPlace concatenates the given values to the end of the receiver.
func (s *Series) AppendInPlace(values ...any) *Series {
	s.values = append(s.values, s.coerceIncoming(values)...)
	return s
}

// Insert returns a new Series with the given values spliced in before
// index. The index must be an existing position.
func (s *Series) Insert(index int, values ...any) (*Series, error) {
	if err := validation.ValidateIndex(index, len(s.values), "Insert", "index"); err != nil {
		return nil, err
	}
	return fromOwned(spliceBefore(s.values, index, s.coerceIncoming(values)), s.coerce), nil
}

// InsertInPlace splices the given values into the receiver before index.
func (s *Series) InsertInPlace(index int, values ...any) (*Series, error) {
	if err := validation.ValidateIndex(index, len(s.values), "Insert", "index"); err != nil {
		return nil, err
	}
	s.values = spliceBefore(s.values, index, s.coerceIncoming(values))
	return s, nil
}

func spliceBefore(values []any, index int, incoming []any) []any {
	out := make([]any, 0, len(values)+len(incoming))
	out = append(out, values[:index]...)
	out = append(out, incoming...)
	out = append(out, values[index:]...)
	return out
}

// Concat returns a new Series with the other Series' materialized values
// appended. The operand must be a Series.
func (s *Series) Concat(other *Series) (*Series, error) {
	if err := validation.ValidateOperand(other, "Concat"); err != nil {
		return nil, err
	}
	out := make([]any, 0, len(s.values)+len(other.values))
	out = append(out, s.values...)
	out = append(out, other.values...)
	return fromOwned(out, s.coerce), nil
}

// ConcatInPlace appends the other Series' materialized values to the
// receiver.
func (s *Series) ConcatInPlace(other *Series) (*Series, error) {
	if err := validation.ValidateOperand(other, "Concat"); err != nil {
		return nil, err
	}
	s.values = append(s.values, other.values...)
	return s, nil
}

// clampRange resolves slice offsets: negative offsets count from the end
// and out-of-bounds offsets clamp silently.
func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}
	if end < 0 {
		end += n
		if end < 0 {
			end = 0
		}
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

// Slice returns a new Series over [start, end). Negative offsets count
// from the end; out-of-bounds offsets are clamped.
func (s *Series) Slice(start, end int) *Series {
	lo, hi := clampRange(start, end, len(s.values))
	out := make([]any, hi-lo)
	copy(out, s.values[lo:hi])
	return fromOwned(out, s.coerce)
}

// SliceFrom is Slice with the end defaulted to the length.
func (s *Series) SliceFrom(start int) *Series {
	return s.Slice(start, len(s.values))
}

// SliceInPlace narrows the receiver to [start, end) under Slice rules.
func (s *Series) SliceInPlace(start, end int) *Series {
	lo, hi := clampRange(start, end, len(s.values))
	out := make([]any, hi-lo)
	copy(out, s.values[lo:hi])
	s.values = out
	return s
}

// Head returns the first n values (fewer when the Series is shorter).
func (s *Series) Head(n int) *Series {
	if n < 0 {
		n = 0
	}
	return s.Slice(0, n)
}

// Tail returns the last n values (fewer when the Series is shorter).
func (s *Series) Tail(n int) *Series {
	if n <= 0 {
		return s.Slice(0, 0)
	}
	return s.Slice(-n, len(s.values))
}

func filterValues(values []any, pred func(any) bool) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Filter returns a new Series keeping the values the predicate holds for.
func (s *Series) Filter(pred func(any) bool) *Series {
	return fromOwned(filterValues(s.values, pred), s.coerce)
}

// FilterInPlace keeps only the values the predicate holds for.
func (s *Series) FilterInPlace(pred func(any) bool) *Series {
	s.values = filterValues(s.values, pred)
	return s
}

// Drop returns a new Series keeping the values the predicate does NOT
// hold for; the logical complement of Filter.
func (s *Series) Drop(pred func(any) bool) *Series {
	return s.Filter(func(v any) bool { return !pred(v) })
}

// DropInPlace removes the values the predicate holds for.
func (s *Series) DropInPlace(pred func(any) bool) *Series {
	return s.FilterInPlace(func(v any) bool { return !pred(v) })
}

// defaultKeep is the DropNA retention list when none is given: falsy
// values that still carry information.
func defaultKeep() []any {
	return []any{float64(0), false}
}

func (s *Series) dropNAPredicate(keep []any) func(any) bool {
	if len(keep) == 0 {
		keep = defaultKeep()
	}
	kept := make([]any, len(keep))
	for i, k := range keep {
		kept[i] = value.TryCoerceNumeric(k)
	}
	return func(v any) bool {
		if value.Truthy(v) {
			return true
		}
		for _, k := range kept {
			if equalStrict(v, k) {
				return true
			}
		}
		return false
	}
}

// DropNA returns a new Series without missing and otherwise-falsy values.
// A value is retained iff it is truthy or appears in the keep list; when
// no keep list is given, 0 and false are retained.
func (s *Series) DropNA(keep ...any) *Series {
	return s.Filter(s.dropNAPredicate(keep))
}

// DropNAInPlace removes missing and otherwise-falsy values from the
// receiver under DropNA rules.
func (s *Series) DropNAInPlace(keep ...any) *Series {
	return s.FilterInPlace(s.dropNAPredicate(keep))
}

// DropDuplicates returns a new Series keeping the first occurrence of
// each distinct value in first-seen order. Equality is strict, so
// distinct nested structures with equal shape are not deduplicated.
func (s *Series) DropDuplicates() *Series {
	return fromOwned(distinctValues(s.values), s.coerce)
}

// DropDuplicatesInPlace keeps the first occurrence of each distinct value.
func (s *Series) DropDuplicatesInPlace() *Series {
	s.values = distinctValues(s.values)
	return s
}

// SortOptions configures Sort direction.
type SortOptions struct {
	Reverse bool // descending when true
}

func sortedCopy(values []any, reverse bool) []any {
	// Numeric subtraction comparator: non-numeric values coerce to NaN,
	// every comparison against NaN is false, and the stable sort leaves
	// their relative order comparator-undefined, as documented. Sorting
	// goes through an index permutation so the precomputed keys stay
	// aligned with the values they describe.
	keys := make([]float64, len(values))
	for i, v := range values {
		f, ok := value.ToFloat(v)
		if !ok {
			f = math.NaN()
		}
		keys[i] = f
	}
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		if reverse {
			return keys[j] < keys[i]
		}
		return keys[i] < keys[j]
	})
	out := make([]any, len(values))
	for pos, i := range idx {
		out[pos] = values[i]
	}
	return out
}

// Sort returns a new Series sorted numerically ascending, descending with
// Reverse. Non-numeric values get comparator-undefined relative order.
func (s *Series) Sort(opts ...SortOptions) *Series {
	var o SortOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return fromOwned(sortedCopy(s.values, o.Reverse), s.coerce)
}

// SortInPlace sorts the receiver under Sort rules.
func (s *Series) SortInPlace(opts ...SortOptions) *Series {
	var o SortOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	s.values = sortedCopy(s.values, o.Reverse)
	return s
}

// Shuffle returns a new Series with the values in randomized order.
func (s *Series) Shuffle() *Series {
	out := make([]any, len(s.values))
	copy(out, s.values)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return fromOwned(out, s.coerce)
}

// ShuffleInPlace randomizes the order of the receiver's values.
func (s *Series) ShuffleInPlace() *Series {
	rng.Shuffle(len(s.values), func(i, j int) {
		s.values[i], s.values[j] = s.values[j], s.values[i]
	})
	return s
}

// roundedValues formats every value at fixed-decimal precision, failing
// before producing anything if any value is not numeric.
func (s *Series) roundedValues(digits int) ([]any, error) {
	if err := validation.ValidateCount(digits, "Round", "digits"); err != nil {
		return nil, err
	}
	view, err := s.numericView("Round")
	if err != nil {
		return nil, err
	}
	out := make([]any, len(view))
	for i, f := range view {
		out[i] = strconv.FormatFloat(f, 'f', digits, 64)
	}
	return out, nil
}

// Round returns a new Series with each value replaced by its fixed-decimal
// string representation at the given precision. Every value must be
// numeric-coercible. Note the output values are formatted strings, not
// numbers: chaining further numeric operations requires re-coercion,
// which Clone and Map perform automatically.
func (s *Series) Round(digits int) (*Series, error) {
	out, err := s.roundedValues(digits)
	if err != nil {
		return nil, err
	}
	return fromOwned(out, s.coerce), nil
}

// RoundInPlace replaces the receiver's values under Round rules. The
// receiver is untouched when any value fails numeric coercion.
func (s *Series) RoundInPlace(digits int) (*Series, error) {
	out, err := s.roundedValues(digits)
	if err != nil {
		return nil, err
	}
	s.values = out
	return s, nil
}
