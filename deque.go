package contains

import (
	"fmt"
)

// Deque is a double-ended sequence. Go has no native deque, so one is
// provided here as a containment-queryable shape.
type Deque[V comparable] struct {
	entries []V
}

func NewDeque[V comparable](vs ...V) *Deque[V] {
	entries := make([]V, 0, len(vs))
	entries = append(entries, vs...)
	return &Deque[V]{
		entries: entries,
	}
}

func (d *Deque[V]) Contains(v V) bool {
	for _, e := range d.entries {
		if e == v {
			return true
		}
	}
	return false
}

func (d *Deque[V]) PushBack(v V) {
	d.entries = append(d.entries, v)
}

func (d *Deque[V]) PushFront(v V) {
	d.entries = append([]V{v}, d.entries...)
}

func (d *Deque[V]) PopFront() (v V) {
	n := len(d.entries)
	if n == 0 {
		return v
	}
	ret := d.entries[0]
	d.entries = d.entries[1:]
	return ret
}

func (d *Deque[V]) PopBack() (v V) {
	n := len(d.entries)
	if n == 0 {
		return v
	}
	ret := d.entries[n-1]
	d.entries = d.entries[:n-1]
	return ret
}

func (d *Deque[V]) Size() int {
	return len(d.entries)
}

func (d Deque[V]) String() string {
	return fmt.Sprint(d.entries)
}
