package contains

import "strings"

// String views text as a container of its contiguous fragments.
type String string

func (s String) Contains(sub string) bool {
	return strings.Contains(string(s), sub)
}

// Chars views text as a container of its characters.
type Chars string

func (s Chars) Contains(r rune) bool {
	return strings.ContainsRune(string(s), r)
}
