package strutil

import (
	"iter"
)

// Join works in the same way as the bytes.Join does, except that it operates an iterator
// as opposed to greedy slice and appends the result to dst.
func Join(dst []byte, elems iter.Seq[[]byte], sep string) []byte {
	first := true

	for elem := range elems {
		if !first {
			dst = append(dst, sep...)
		}

		first = false
		dst = append(dst, elem...)
	}

	return dst
}
