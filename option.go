package contains

// Option holds zero or one value. As a container it holds its value when
// present and nothing otherwise.
type Option[V comparable] struct {
	value   V
	present bool
}

func Some[V comparable](v V) Option[V] {
	return Option[V]{
		value:   v,
		present: true,
	}
}

func None[V comparable]() Option[V] {
	return Option[V]{}
}

func (o Option[V]) Contains(v V) bool {
	return o.present && o.value == v
}

// Result holds either a value or an error. As a container it holds its value
// only on the success side.
type Result[V comparable] struct {
	value V
	err   error
}

func Ok[V comparable](v V) Result[V] {
	return Result[V]{
		value: v,
	}
}

func Err[V comparable](err error) Result[V] {
	return Result[V]{
		err: err,
	}
}

func (r Result[V]) Contains(v V) bool {
	return r.err == nil && r.value == v
}
