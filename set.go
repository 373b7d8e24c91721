package contains

type Set[V comparable] map[V]struct{}

func NewSet[V comparable](vs ...V) Set[V] {
	s := make(Set[V], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[V]) Contains(v V) bool {
	if _, ok := s[v]; ok {
		return true
	}
	return false
}

func (s Set[V]) Size() int {
	return len(s)
}

// HashFunc maps a value to the representative its set is keyed by. Two values
// with the same representative are equal as far as the set is concerned.
type HashFunc[R comparable, V any] func(V) R

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashFunc[R, V]
}

// NewHashSet builds a set of vs keyed by f, for value types that are not
// comparable or whose equality is caller-defined.
func NewHashSet[R comparable, V any](f HashFunc[R, V], vs ...V) Container[V] {
	entries := make(map[R]V, len(vs))
	for _, v := range vs {
		entries[f(v)] = v
	}
	return &hashSet[R, V]{
		entries:  entries,
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		return true
	}
	return false
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}
