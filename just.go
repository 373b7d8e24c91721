package contains

// Just treats a single scalar as a container of exactly one element. Optional
// extension, not part of the core adapter catalogue.
type Just[V comparable] struct {
	Value V
}

func (j Just[V]) Contains(v V) bool {
	return j.Value == v
}
