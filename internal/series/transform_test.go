package series

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tabby/tabby/internal/errors"
)

func TestAppend(t *testing.T) {
	s := Of(float64(1), float64(2))

	out := s.Append(float64(3), "4")
	assert.Equal(t, []any{float64(1), float64(2), float64(3), float64(4)}, out.Data())
	// Pure form leaves the receiver untouched.
	assert.Equal(t, 2, s.Len())

	same := s.AppendInPlace("x")
	assert.Same(t, s, same)
	assert.Equal(t, []any{float64(1), float64(2), "x"}, s.Data())
}

func TestInsert(t *testing.T) {
	s := Of("a", "b", "c")

	out, err := s.Insert(1, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "x", "y", "b", "c"}, out.Data())
	assert.Equal(t, 3, s.Len())

	head, err := s.Insert(0, "z")
	require.NoError(t, err)
	assert.Equal(t, []any{"z", "a", "b", "c"}, head.Data())
}

func TestInsertValidatesIndex(t *testing.T) {
	s := Of("a", "b")

	tests := []struct {
		name  string
		index int
	}{
		{name: "past end", index: 2},
		{name: "negative", index: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Insert(tt.index, "x")
			assert.True(t, stderrors.Is(err, errors.ErrInvalidArgument))

			_, err = s.InsertInPlace(tt.index, "x")
			assert.True(t, stderrors.Is(err, errors.ErrInvalidArgument))
			assert.Equal(t, []any{"a", "b"}, s.Data())
		})
	}
}

func TestInsertInPlace(t *testing.T) {
	s := Of("a", "b")
	same, err := s.InsertInPlace(1, "x")
	require.NoError(t, err)
	assert.Same(t, s, same)
	assert.Equal(t, []any{"a", "x", "b"}, s.Data())
}

func TestConcat(t *testing.T) {
	a := Of(float64(1), float64(2))
	b := Of(float64(3))

	out, err := a.Concat(b)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, out.Data())
	assert.Equal(t, 2, a.Len())

	same, err := a.ConcatInPlace(b)
	require.NoError(t, err)
	assert.Same(t, a, same)
	assert.Equal(t, 3, a.Len())
}

func TestConcatRejectsNilOperand(t *testing.T) {
	a := Of(float64(1))

	_, err := a.Concat(nil)
	assert.True(t, stderrors.Is(err, errors.ErrOperandMismatch))

	_, err = a.ConcatInPlace(nil)
	assert.True(t, stderrors.Is(err, errors.ErrOperandMismatch))
	assert.Equal(t, 1, a.Len())
}

func TestSlice(t *testing.T) {
	s := Of(float64(1), float64(2), float64(3), float64(4))

	tests := []struct {
		name     string
		start    int
		end      int
		expected []any
	}{
		{name: "middle", start: 1, end: 3, expected: []any{float64(2), float64(3)}},
		{name: "full range", start: 0, end: 4, expected: []any{float64(1), float64(2), float64(3), float64(4)}},
		{name: "negative start", start: -2, end: 4, expected: []any{float64(3), float64(4)}},
		{name: "negative end", start: 0, end: -1, expected: []any{float64(1), float64(2), float64(3)}},
		{name: "clamped end", start: 2, end: 99, expected: []any{float64(3), float64(4)}},
		{name: "clamped start", start: -99, end: 2, expected: []any{float64(1), float64(2)}},
		{name: "inverted range is empty", start: 3, end: 1, expected: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Slice(tt.start, tt.end)
			assert.Equal(t, tt.expected, out.Data())
		})
	}
}

func TestSliceFullRangeIsDistinctInstance(t *testing.T) {
	s := Of("a", "b")
	out := s.Slice(0, s.Len())

	assert.NotSame(t, s, out)
	assert.Equal(t, s.Data(), out.Data())

	// And distinct storage.
	require.NoError(t, out.Set(0, "mutated"))
	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestSliceFrom(t *testing.T) {
	s := Of(float64(1), float64(2), float64(3))
	assert.Equal(t, []any{float64(2), float64(3)}, s.SliceFrom(1).Data())
}

func TestSliceInPlace(t *testing.T) {
	s := Of(float64(1), float64(2), float64(3), float64(4))
	same := s.SliceInPlace(1, 3)
	assert.Same(t, s, same)
	assert.Equal(t, []any{float64(2), float64(3)}, s.Data())
}

func TestHeadTail(t *testing.T) {
	s := Of(float64(1), float64(2), float64(3), float64(4), float64(5), float64(6), float64(7))

	tests := []struct {
		name        string
		n           int
		headLen     int
		tailLen     int
		headFirst   any
		tailFirst   any
		skipContent bool
	}{
		{name: "within length", n: 3, headLen: 3, tailLen: 3, headFirst: float64(1), tailFirst: float64(5)},
		{name: "beyond length", n: 99, headLen: 7, tailLen: 7, headFirst: float64(1), tailFirst: float64(1)},
		{name: "zero", n: 0, headLen: 0, tailLen: 0, skipContent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head := s.Head(tt.n)
			tail := s.Tail(tt.n)
			assert.Equal(t, tt.headLen, head.Len())
			assert.Equal(t, tt.tailLen, tail.Len())
			if !tt.skipContent {
				first, _ := head.First()
				assert.Equal(t, tt.headFirst, first)
				first, _ = tail.First()
				assert.Equal(t, tt.tailFirst, first)
			}
		})
	}
}

func TestFilterDropPartition(t *testing.T) {
	s := Of(float64(1), "a", float64(2), "b", nil, float64(3))
	pred := func(v any) bool {
		_, isNum := v.(float64)
		return isNum
	}

	kept := s.Filter(pred)
	dropped := s.Drop(pred)

	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, kept.Data())
	assert.Equal(t, []any{"a", "b", nil}, dropped.Data())
	assert.Equal(t, s.Len(), kept.Len()+dropped.Len())
}

func TestFilterInPlace(t *testing.T) {
	s := Of(float64(1), float64(2), float64(3))
	same := s.FilterInPlace(func(v any) bool { return v.(float64) > 1 })
	assert.Same(t, s, same)
	assert.Equal(t, []any{float64(2), float64(3)}, s.Data())
}

func TestDropNA(t *testing.T) {
	s := Of(float64(1), float64(0), "", nil, false, "x")

	// Default keep list retains 0 and false; empty strings and missing
	// values go.
	out := s.DropNA()
	assert.Equal(t, []any{float64(1), float64(0), false, "x"}, out.Data())

	// An explicit keep list replaces the default.
	out = s.DropNA("")
	assert.Equal(t, []any{float64(1), "", "x"}, out.Data())
}

func TestDropNAInPlace(t *testing.T) {
	s := Of(float64(1), nil, float64(2))
	same := s.DropNAInPlace()
	assert.Same(t, s, same)
	assert.Equal(t, []any{float64(1), float64(2)}, s.Data())
}

func TestDropDuplicates(t *testing.T) {
	s := Of(float64(3), float64(1), float64(3), float64(2), float64(1))

	out := s.DropDuplicates()
	assert.Equal(t, []any{float64(3), float64(1), float64(2)}, out.Data())
	assert.Equal(t, 5, s.Len())
}

func TestDropDuplicatesKeepsDistinctStructures(t *testing.T) {
	// Distinct structures with equal shape are not equal under strict
	// identity.
	s := New([]any{map[string]any{"a": float64(1)}, map[string]any{"a": float64(1)}})
	assert.Equal(t, 2, s.DropDuplicates().Len())
}

func TestDropDuplicatesMixedTypesDoNotCollide(t *testing.T) {
	s := Of("1", float64(1))
	// "1" coerces to numeric 1 at construction, so these ARE duplicates.
	assert.Equal(t, 1, s.DropDuplicates().Len())

	raw := New([]any{"a", "a", true, true}, WithCoercer(func(v any) any { return v }))
	assert.Equal(t, []any{"a", true}, raw.DropDuplicates().Data())
}

func TestSort(t *testing.T) {
	s := Of(float64(3), float64(1), float64(2))

	asc := s.Sort()
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, asc.Data())
	assert.Equal(t, []any{float64(3), float64(1), float64(2)}, s.Data())

	desc := s.Sort(SortOptions{Reverse: true})
	assert.Equal(t, []any{float64(3), float64(2), float64(1)}, desc.Data())
}

func TestSortInPlace(t *testing.T) {
	s := Of(float64(2), float64(1))
	same := s.SortInPlace()
	assert.Same(t, s, same)
	assert.Equal(t, []any{float64(1), float64(2)}, s.Data())
}

func TestSortNumericStringsParticipate(t *testing.T) {
	// Numeric strings coerce at construction, so they sort numerically.
	s := Of("10", "2", "1")
	assert.Equal(t, []any{float64(1), float64(2), float64(10)}, s.Sort().Data())
}

func TestShufflePreservesContents(t *testing.T) {
	s := Of(float64(1), float64(2), float64(3), float64(4), float64(5))

	out := s.Shuffle()
	assert.Equal(t, s.Len(), out.Len())
	assert.ElementsMatch(t, s.Data(), out.Data())

	same := s.ShuffleInPlace()
	assert.Same(t, s, same)
	assert.ElementsMatch(t, []any{float64(1), float64(2), float64(3), float64(4), float64(5)}, s.Data())
}

func TestRound(t *testing.T) {
	s := Of(1.234, 2.5, float64(7))

	out, err := s.Round(1)
	require.NoError(t, err)
	assert.Equal(t, []any{"1.2", "2.5", "7.0"}, out.Data())

	whole, err := s.Round(0)
	require.NoError(t, err)
	assert.Equal(t, []any{"1", "2", "7"}, whole.Data())

	// Receiver untouched by the pure form.
	assert.Equal(t, []any{1.234, 2.5, float64(7)}, s.Data())
}

func TestRoundTypeMismatchLeavesSeriesUnmutated(t *testing.T) {
	s := Of(float64(1), "abc", float64(3))

	_, err := s.Round(2)
	assert.True(t, stderrors.Is(err, errors.ErrTypeMismatch))

	_, err = s.RoundInPlace(2)
	assert.True(t, stderrors.Is(err, errors.ErrTypeMismatch))
	assert.Equal(t, []any{float64(1), "abc", float64(3)}, s.Data())
}

func TestRoundRejectsNegativeDigits(t *testing.T) {
	s := Of(float64(1))
	_, err := s.Round(-1)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidArgument))
}

func TestRoundInPlace(t *testing.T) {
	s := Of(1.005, 2.675)
	same, err := s.RoundInPlace(1)
	require.NoError(t, err)
	assert.Same(t, s, same)
	assert.Equal(t, []any{"1.0", "2.7"}, s.Data())
}

func TestInPlaceChaining(t *testing.T) {
	s := Of(float64(5), nil, float64(3), float64(5), float64(1))

	out := s.DropNAInPlace().DropDuplicatesInPlace().SortInPlace()
	assert.Same(t, s, out)
	assert.Equal(t, []any{float64(1), float64(3), float64(5)}, s.Data())
}
