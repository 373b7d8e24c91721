package contains

import "golang.org/x/exp/constraints"

// Range is the half-open interval [Low, High). Containment is a pair of bound
// checks, the range's elements are never materialized.
type Range[V constraints.Ordered] struct {
	Low  V
	High V
}

func (r Range[V]) Contains(v V) bool {
	return r.Low <= v && v < r.High
}

// RangeInclusive is the closed interval [Low, High].
type RangeInclusive[V constraints.Ordered] struct {
	Low  V
	High V
}

func (r RangeInclusive[V]) Contains(v V) bool {
	return r.Low <= v && v <= r.High
}

// RangeFrom is [Low, ∞).
type RangeFrom[V constraints.Ordered] struct {
	Low V
}

func (r RangeFrom[V]) Contains(v V) bool {
	return r.Low <= v
}

// RangeTo is (-∞, High).
type RangeTo[V constraints.Ordered] struct {
	High V
}

func (r RangeTo[V]) Contains(v V) bool {
	return v < r.High
}

// RangeToInclusive is (-∞, High].
type RangeToInclusive[V constraints.Ordered] struct {
	High V
}

func (r RangeToInclusive[V]) Contains(v V) bool {
	return v <= r.High
}

// RangeFull is unbounded on both sides and holds every value of its type.
type RangeFull[V constraints.Ordered] struct{}

func (r RangeFull[V]) Contains(v V) bool {
	return true
}
