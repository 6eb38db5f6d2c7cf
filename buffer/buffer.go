package buffer

// Buffer is a growable byte sequence owning its memory. It serves both as a header value
// and as the sink the encoder writes into. Writes are all-or-nothing: once the maximal
// size would be exceeded, the data is discarded and false is returned, leaving previously
// written bytes intact.
//
// A zero Buffer is empty and unbounded.
type Buffer struct {
	memory  []byte
	maxSize int
}

// New returns a buffer with initialSize bytes of capacity pre-allocated. maxSize of 0
// disables the limit.
func New(initialSize, maxSize int) *Buffer {
	if maxSize > 0 && initialSize > maxSize {
		initialSize = maxSize
	}

	return &Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Empty returns an unbounded buffer without any pre-allocated memory.
func Empty() *Buffer {
	return new(Buffer)
}

// From wraps data into an unbounded buffer. The buffer takes the ownership over data,
// so the caller must not touch the slice afterwards.
func From(data []byte) *Buffer {
	return Wrap(data, 0)
}

// Wrap behaves exactly as From, but sets the limit. The data itself is not checked against
// it, so it's up to the caller to make sure it fits.
func Wrap(data []byte, maxSize int) *Buffer {
	return &Buffer{
		memory:  data,
		maxSize: maxSize,
	}
}

// Fits reports whether n more bytes can be written without exceeding the limit.
func (b *Buffer) Fits(n int) bool {
	return b.maxSize == 0 || len(b.memory)+n <= b.maxSize
}

// Append writes data, checking whether the new amount of bytes doesn't exceed the
// limit, otherwise discarding the data and returning false.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if !b.Fits(len(elements)) {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// AppendByte writes a single byte, checking whether it won't exceed the limit.
func (b *Buffer) AppendByte(c byte) (ok bool) {
	if !b.Fits(1) {
		return false
	}

	b.memory = append(b.memory, c)
	return true
}

// AppendString behaves exactly as Append, but accepts a string.
func (b *Buffer) AppendString(str string) (ok bool) {
	if !b.Fits(len(str)) {
		return false
	}

	b.memory = append(b.memory, str...)
	return true
}

// Bytes returns the written data. The slice is valid until the next write or release.
func (b *Buffer) Bytes() []byte {
	return b.memory
}

// String returns a copy of the written data.
func (b *Buffer) String() string {
	return string(b.memory)
}

func (b *Buffer) Len() int {
	return len(b.memory)
}

func (b *Buffer) Cap() int {
	return cap(b.memory)
}

// Take moves the data out of the buffer, leaving it empty. The limit is preserved.
func (b *Buffer) Take() []byte {
	data := b.memory
	b.memory = nil

	return data
}

// Clone returns a deep copy sharing no memory with the original.
func (b *Buffer) Clone() *Buffer {
	var memory []byte
	if len(b.memory) > 0 {
		memory = make([]byte, len(b.memory))
		copy(memory, b.memory)
	}

	return &Buffer{
		memory:  memory,
		maxSize: b.maxSize,
	}
}

// Reset truncates the data, keeping the allocated memory for reuse.
func (b *Buffer) Reset() {
	b.memory = b.memory[:0]
}

// Release drops the memory entirely. It is safe to call on an already released buffer.
func (b *Buffer) Release() {
	b.memory = nil
}
