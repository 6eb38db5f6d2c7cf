package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkBuffer(b *testing.B) {
	buff := New(1024, 4096)
	smallString := []byte(strings.Repeat("a", 1023))
	bigString := []byte(strings.Repeat("a", 4095))

	b.Run("no overflow", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(smallString)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = buff.Append(smallString)
			buff.Reset()
		}
	})

	b.Run("with growth", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(bigString)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = buff.Append(bigString)
			buff.Reset()
			buff.memory = buff.memory[0:0:1024]
		}
	})
}

func TestBuffer(t *testing.T) {
	t.Run("append", func(t *testing.T) {
		buff := New(10, 20)
		require.True(t, buff.Append([]byte("Hello")))
		require.True(t, buff.AppendByte(','))
		require.True(t, buff.AppendString(" World"))
		require.Equal(t, "Hello, World", buff.String())
		require.Equal(t, 12, buff.Len())
	})

	t.Run("growth keeps content", func(t *testing.T) {
		buff := New(2, 0)
		var want []byte
		for i := 0; i < 1000; i++ {
			c := byte('a' + i%26)
			require.True(t, buff.AppendByte(c))
			want = append(want, c)
		}

		require.Equal(t, want, buff.Bytes())
		require.LessOrEqual(t, buff.Len(), buff.Cap())
	})

	t.Run("overflow over the limit", func(t *testing.T) {
		buff := New(10, 20)
		require.True(t, buff.AppendString("Hello, World!"))
		require.False(t, buff.AppendString("overflow"))
		require.False(t, buff.AppendByte('!') && buff.AppendString("1234567"))
		require.Equal(t, "Hello, World!!", buff.String())
	})

	t.Run("zero value is unbounded", func(t *testing.T) {
		var buff Buffer
		require.True(t, buff.AppendString(strings.Repeat("a", 1<<16)))
		require.Equal(t, 1<<16, buff.Len())
	})

	t.Run("take moves out", func(t *testing.T) {
		buff := Empty()
		require.True(t, buff.AppendString("moved"))
		data := buff.Take()
		require.Equal(t, "moved", string(data))
		require.Zero(t, buff.Len())

		require.True(t, buff.AppendString("fresh"))
		require.Equal(t, "moved", string(data))
	})

	t.Run("clone is independent", func(t *testing.T) {
		buff := From([]byte("original"))
		clone := buff.Clone()
		require.True(t, buff.AppendString(" changed"))
		buff.memory[0] = 'O'
		require.Equal(t, "original", clone.String())
	})

	t.Run("release", func(t *testing.T) {
		buff := New(10, 0)
		require.True(t, buff.AppendString("data"))
		buff.Release()
		require.Zero(t, buff.Len())
		require.Zero(t, buff.Cap())
		buff.Release()
		require.Zero(t, buff.Len())
	})

	t.Run("initial size is capped by the limit", func(t *testing.T) {
		buff := New(100, 10)
		require.Equal(t, 10, buff.Cap())
	})
}
