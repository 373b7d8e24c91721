package contains

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type OrderedSet[V constraints.Ordered] struct {
	entries []V
}

func NewOrderedSet[V constraints.Ordered](vs ...V) *OrderedSet[V] {
	entries := make([]V, 0, len(vs))
	entries = append(entries, vs...)
	slices.Sort(entries)
	entries = slices.Compact(entries)
	return &OrderedSet[V]{
		entries: entries,
	}
}

func (s *OrderedSet[V]) Contains(v V) bool {
	_, ok := slices.BinarySearch(s.entries, v)
	return ok
}

func (s *OrderedSet[V]) Size() int {
	return len(s.entries)
}

func (s *OrderedSet[V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	arr = append(arr, s.entries...)
	return arr
}

func (s OrderedSet[V]) String() string {
	return fmt.Sprint(s.entries)
}
