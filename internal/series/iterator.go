package series

// ValueIterator is a single-pass pull cursor over the values in index
// order. Each call to Series.Values yields a fresh, independent cursor.
// The cursor reads storage by reference at pull time, so mutating the
// Series mid-iteration gives implementation-defined (but crash-safe)
// results.
type ValueIterator struct {
	s   *Series
	pos int
}

// Values returns a new cursor starting at index 0. Prior cursors are
// unaffected.
func (s *Series) Values() *ValueIterator {
	return &ValueIterator{s: s}
}

// Next returns the next value. After the last value it returns (nil,
// false) on every subsequent pull.
func (it *ValueIterator) Next() (any, bool) {
	if it.pos >= len(it.s.values) {
		return nil, false
	}
	v := it.s.values[it.pos]
	it.pos++
	return v, true
}

// ItemIterator is a single-pass pull cursor over (index, value) pairs
// under the same contract as ValueIterator.
type ItemIterator struct {
	s   *Series
	pos int
}

// Items returns a new item cursor starting at index 0.
func (s *Series) Items() *ItemIterator {
	return &ItemIterator{s: s}
}

// Next returns the next index and value. After the last pair it returns
// (0, nil, false) on every subsequent pull.
func (it *ItemIterator) Next() (int, any, bool) {
	if it.pos >= len(it.s.values) {
		return 0, nil, false
	}
	i := it.pos
	it.pos++
	return i, it.s.values[i], true
}

// ForEach invokes the callback for each element in index order, passing
// the value, its position and the live storage slice.
func (s *Series) ForEach(fn func(v any, index int, data []any)) {
	for i, v := range s.values {
		fn(v, i, s.values)
	}
}

// Map returns a new Series built by applying the callback element-wise.
// Results pass through standard constructor coercion, so numeric-looking
// string results are coerced back to numbers.
func (s *Series) Map(fn func(any) any) *Series {
	mapped := make([]any, len(s.values))
	for i, v := range s.values {
		mapped[i] = fn(v)
	}
	return New(mapped, WithCoercer(s.coerce))
}
