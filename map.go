package contains

// Keys views a map as a container of its keys. Values never take part in the
// membership test.
type Keys[K comparable, V any] map[K]V

func (m Keys[K, V]) Contains(k K) bool {
	if _, ok := m[k]; ok {
		return true
	}
	return false
}

func (m Keys[K, V]) Size() int {
	return len(m)
}
