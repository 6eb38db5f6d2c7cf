package strutil

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

func asIterator(elems ...string) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, elem := range elems {
			if !yield([]byte(elem)) {
				return
			}
		}
	}
}

func TestJoin(t *testing.T) {
	str := Join(nil, asIterator(), ",")
	require.Empty(t, str)

	str = Join(nil, asIterator("hello"), ",")
	require.Equal(t, "hello", string(str))

	str = Join(nil, asIterator("hello", "world"), ",")
	require.Equal(t, "hello,world", string(str))

	str = Join([]byte("v0;"), asIterator("v1", "", "v3"), ",")
	require.Equal(t, "v0;v1,,v3", string(str))
}
