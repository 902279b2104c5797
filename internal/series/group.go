package series

import (
	"sort"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/go-tabby/tabby/internal/value"
)

// ValueCount pairs a value with its occurrence count.
type ValueCount struct {
	Value any
	Count int
}

// ValueFrequency pairs a value with its relative frequency.
type ValueFrequency struct {
	Value     any
	Frequency float64
}

// CountsOptions configures Counts and Frequencies ordering.
type CountsOptions struct {
	Sort    bool // sort by count; first-seen order when false
	Reverse bool // descending when true
}

// DefaultCountsOptions returns the default ordering: by count, descending.
func DefaultCountsOptions() CountsOptions {
	return CountsOptions{Sort: true, Reverse: true}
}

// groupEntry is one distinct loose key with its representative value.
type groupEntry struct {
	key   string
	value any
	count int
}

// groupMap buckets entries by the xxhash of their loose key, chaining on
// hash collisions, and remembers first-seen order.
type groupMap struct {
	buckets map[uint64][]*groupEntry
	order   []*groupEntry
}

func newGroupMap(sizeHint int) *groupMap {
	return &groupMap{
		buckets: make(map[uint64][]*groupEntry, sizeHint),
		order:   make([]*groupEntry, 0, sizeHint),
	}
}

func (g *groupMap) add(v any) {
	key := value.Key(v)
	hash := xxhash.Sum64String(key)
	for _, e := range g.buckets[hash] {
		if e.key == key {
			e.count++
			return
		}
	}
	e := &groupEntry{key: key, value: v, count: 1}
	g.buckets[hash] = append(g.buckets[hash], e)
	g.order = append(g.order, e)
}

// grouped returns the entries ordered per the options: by count with ties
// in first-seen order, or plain first-seen order when sorting is off.
func (s *Series) grouped(opts []CountsOptions) []*groupEntry {
	o := DefaultCountsOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	g := newGroupMap(len(s.values))
	for _, v := range s.values {
		g.add(v)
	}

	entries := g.order
	if o.Sort {
		sorted := make([]*groupEntry, len(entries))
		copy(sorted, entries)
		sort.SliceStable(sorted, func(i, j int) bool {
			if o.Reverse {
				return sorted[i].count > sorted[j].count
			}
			return sorted[i].count < sorted[j].count
		})
		entries = sorted
	}
	return entries
}

// Counts groups equal values and returns value/count pairs. Grouping uses
// the loose string key, so numeric 1 and the string "1" land in the same
// group. Sorted by count descending by default, ascending with
// Reverse=false, first-seen order with Sort=false.
func (s *Series) Counts(opts ...CountsOptions) []ValueCount {
	entries := s.grouped(opts)
	out := make([]ValueCount, len(entries))
	for i, e := range entries {
		out[i] = ValueCount{Value: e.value, Count: e.count}
	}
	return out
}

// Frequencies is Counts with each count divided by the Series length.
func (s *Series) Frequencies(opts ...CountsOptions) []ValueFrequency {
	entries := s.grouped(opts)
	out := make([]ValueFrequency, len(entries))
	n := float64(len(s.values))
	for i, e := range entries {
		out[i] = ValueFrequency{Value: e.value, Frequency: float64(e.count) / n}
	}
	return out
}
