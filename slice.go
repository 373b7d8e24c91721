package contains

type Slice[V comparable] []V

func (s Slice[V]) Contains(v V) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// Subslice views a sequence as a container of its contiguous sub-sequences.
type Subslice[V comparable] []V

func (s Subslice[V]) Contains(sub []V) bool {
	if len(sub) == 0 {
		return true
	}
	if len(sub) > len(s) {
		return false
	}
outer:
	for i := 0; i <= len(s)-len(sub); i++ {
		for j := range sub {
			if s[i+j] != sub[j] {
				continue outer
			}
		}
		return true
	}
	return false
}
