package config

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersKeyLength struct {
		Maximal int
	}

	HeadersValueLength struct {
		Default, Maximal int
	}

	BufferSize struct {
		Default, Maximal int
	}
)

type (
	Headers struct {
		// Number is responsible for the header map size.
		// Default value is the number of preallocated entries.
		// Maximal value is the maximal number of distinct keys a single map may hold.
		// Zero in any Maximal field below means no limit.
		Number HeadersNumber
		// KeyLength limits the length of a single header key.
		KeyLength HeadersKeyLength
		// ValueLength controls value buffers. Default is the initial capacity of a value
		// buffer, Maximal is a hard limit on the length of a single value, including the
		// separators inserted when values of the same key are combined.
		ValueLength HeadersValueLength
	}

	Buffer struct {
		// Size of the serialization buffer. Encoding a header map whose canonical form
		// exceeds the maximal size fails without writing anything.
		Size BufferSize
	}
)

// Config holds limits and pre-allocations used by the header map and the encoder.
//
// A zero Maximal disables the respective limit, a zero Default disables pre-allocation. So
// the zero Config imposes no restrictions at all, whereas Default() is meant for untrusted
// input.
type Config struct {
	Headers Headers
	Buffer  Buffer
}

// Default returns default config. Maximal values are generous: a signed exchange rarely
// carries more than a few dozen response headers.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Number: HeadersNumber{
				Default: 16,
				Maximal: 1024,
			},
			KeyLength: HeadersKeyLength{
				Maximal: 256,
			},
			ValueLength: HeadersValueLength{
				Default: 64,
				Maximal: 64 * 1024,
			},
		},
		Buffer: Buffer{
			Size: BufferSize{
				Default: 1024,
				Maximal: 1024 * 1024,
			},
		},
	}
}
