// Package contains abstracts membership queries over collection-like types.
//
// Container is the forward capability: a value that can be asked whether it
// holds an item. In is its inverse, asking an item whether a container holds
// it; it is defined once, generically, so every value type works with every
// Container without per-type code.
package contains

type Container[V any] interface {
	Contains(v V) bool
}

func In[V any](v V, c Container[V]) bool {
	return c.Contains(v)
}
