package header

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/indigo-web/sxg/buffer"
	"github.com/indigo-web/sxg/config"
	"github.com/indigo-web/sxg/errors"
	"github.com/indigo-web/sxg/internal/strcomp"
)

// Separator is inserted between values of the same key when they are combined on append.
const Separator = ", "

// growthFactor is the multiplier applied to the entries capacity once it's exhausted.
const growthFactor = 2

// minCapacity is the capacity allocated on the first append into a map without preallocated
// entries.
const minCapacity = 4

type entry struct {
	Key   string
	Value buffer.Buffer
}

// Header is an ordered sequence of header fields. Keys are matched exactly, case included:
// appending a key which is already presented extends its value instead of adding a new entry,
// so "Foo" and "foo" are stored as two distinct entries. They are unified only at encoding.
//
// Limits of the map are set by config.Headers, where a zero Maximal disables the respective
// limit. So the zero Header is an empty unbounded map, ready to use.
//
// Header owns every key and value it stores. Neither Copy nor Merge make two maps share any
// memory, so maps derived from each other may be used by different goroutines. The same map,
// however, must not be used concurrently.
type Header struct {
	entries []entry
	cfg     config.Headers
}

// New returns an empty unbounded header map.
func New() *Header {
	return new(Header)
}

// NewPrealloc returns an empty unbounded header map with n entries pre-allocated.
func NewPrealloc(n int) *Header {
	return NewWithConfig(config.Headers{
		Number: config.HeadersNumber{Default: n},
	})
}

// NewWithConfig returns an empty header map restricted by the limits. Pass
// config.Default().Headers for sane limits on untrusted input.
func NewWithConfig(cfg config.Headers) *Header {
	h := &Header{cfg: cfg}
	if n := cfg.Number.Default; n > 0 {
		if cfg.Number.Maximal > 0 {
			n = min(n, cfg.Number.Maximal)
		}

		h.entries = make([]entry, 0, n)
	}

	return h
}

// Append inserts the value by the key. If the key is already presented (byte-for-byte), the
// value is appended to the existing one after the Separator. Otherwise a new entry is added
// to the tail.
//
// The value is consumed: on success, its data is moved into the map and the buffer is left
// empty. On error neither the map nor the value are modified.
func (h *Header) Append(key string, value *buffer.Buffer) error {
	idx, err := h.admit(key, value.Len())
	if err != nil {
		return err
	}

	h.put(idx, key, value.Take())
	return nil
}

// AppendString behaves exactly as Append, but copies the value from the string.
func (h *Header) AppendString(key, value string) error {
	idx, err := h.admit(key, len(value))
	if err != nil {
		return err
	}

	h.put(idx, key, append(h.newValue(len(value)), value...))
	return nil
}

// AppendBytes behaves exactly as Append, but copies the value, so the passed slice stays
// owned by the caller.
func (h *Header) AppendBytes(key string, value []byte) error {
	idx, err := h.admit(key, len(value))
	if err != nil {
		return err
	}

	h.put(idx, key, append(h.newValue(len(value)), value...))
	return nil
}

// AppendInteger appends the decimal representation of the value.
func (h *Header) AppendInteger(key string, value uint64) error {
	var scratch [20]byte // len("18446744073709551615")
	digits := strconv.AppendUint(scratch[:0], value, 10)

	return h.AppendBytes(key, digits)
}

// admit checks whether a value of length n can be appended by the key, returning the index
// of the entry with the same key, or -1 if a new one is going to be created.
func (h *Header) admit(key string, n int) (idx int, err error) {
	if exceeds(len(key), h.cfg.KeyLength.Maximal) {
		return -1, fmt.Errorf("%q: %w", key, errors.ErrHeaderKeyTooLong)
	}

	idx = h.index(key)
	if idx == -1 {
		if exceeds(len(h.entries)+1, h.cfg.Number.Maximal) {
			return -1, errors.ErrTooManyHeaders
		}

		if exceeds(n, h.cfg.ValueLength.Maximal) {
			return -1, fmt.Errorf("%q: %w", key, errors.ErrHeaderFieldsTooLarge)
		}

		return -1, nil
	}

	if !h.entries[idx].Value.Fits(len(Separator) + n) {
		return -1, fmt.Errorf("%q: %w", key, errors.ErrHeaderFieldsTooLarge)
	}

	return idx, nil
}

// exceeds reports whether n is over the limit. Zero limit means there's none.
func exceeds(n, limit int) bool {
	return limit > 0 && n > limit
}

// put writes the value, which must already be admitted. The map takes the ownership over
// the value slice.
func (h *Header) put(idx int, key string, value []byte) {
	if idx != -1 {
		existing := &h.entries[idx].Value
		existing.AppendString(Separator)
		existing.Append(value)
		return
	}

	h.ensureSeat()
	h.entries = append(h.entries, entry{
		Key:   strings.Clone(key),
		Value: *buffer.Wrap(value, h.cfg.ValueLength.Maximal),
	})
}

func (h *Header) newValue(n int) []byte {
	return make([]byte, 0, max(n, h.cfg.ValueLength.Default))
}

// ensureSeat grows the entries by growthFactor if there's no free seat left. The capacity
// never exceeds the maximal number of entries, if one is set.
func (h *Header) ensureSeat() {
	if len(h.entries) < cap(h.entries) {
		return
	}

	newCap := max(cap(h.entries)*growthFactor, minCapacity)
	if h.cfg.Number.Maximal > 0 {
		newCap = min(newCap, h.cfg.Number.Maximal)
	}
	entries := make([]entry, len(h.entries), newCap)
	copy(entries, h.entries)
	h.entries = entries
}

func (h *Header) index(key string) int {
	for i := range h.entries {
		if h.entries[i].Key == key {
			return i
		}
	}

	return -1
}

// Len returns a number of stored entries.
func (h *Header) Len() int {
	return len(h.entries)
}

func (h *Header) Empty() bool {
	return h.Len() == 0
}

// At returns the entry at the index in the insertion order. The value is valid until the
// next modification of the map.
func (h *Header) At(i int) (key string, value []byte) {
	e := &h.entries[i]
	return e.Key, e.Value.Bytes()
}

// Get returns the value stored exactly by the key.
func (h *Header) Get(key string) (value []byte, found bool) {
	idx := h.index(key)
	if idx == -1 {
		return nil, false
	}

	return h.entries[idx].Value.Bytes(), true
}

// Has indicates, whether there's an entry with exactly the key.
func (h *Header) Has(key string) bool {
	return h.index(key) != -1
}

// ValuesFold returns values of every entry whose key matches case-insensitively, in the
// insertion order.
func (h *Header) ValuesFold(key string) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := range h.entries {
			if strcomp.EqualFold(key, h.entries[i].Key) {
				if !yield(h.entries[i].Value.Bytes()) {
					return
				}
			}
		}
	}
}

// Iter returns an iterator over the entries in the insertion order.
func (h *Header) Iter() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for i := range h.entries {
			if !yield(h.entries[i].Key, h.entries[i].Value.Bytes()) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in the insertion order.
func (h *Header) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range h.entries {
			if !yield(h.entries[i].Key) {
				return
			}
		}
	}
}

// Clone creates a deep copy with the same limits.
func (h *Header) Clone() *Header {
	clone := &Header{
		entries: make([]entry, len(h.entries), cap(h.entries)),
		cfg:     h.cfg,
	}

	for i, e := range h.entries {
		clone.entries[i] = entry{
			Key:   strings.Clone(e.Key),
			Value: *e.Value.Clone(),
		}
	}

	return clone
}

// Release frees every key and value, resetting the map to zero entries. The map stays usable
// and releasing it repeatedly is a no-op.
func (h *Header) Release() {
	for i := range h.entries {
		h.entries[i].Value.Release()
	}

	h.entries = nil
}

// Copy deep-clones every entry of src into dst, preserving their order. dst usually is
// empty, otherwise the entries are appended the same way Append does. Neither map observes
// any later modification of the other one.
//
// Either all the entries are copied, or dst is left untouched and an error is returned.
func Copy(src, dst *Header) error {
	return appendAll(src, dst)
}

// Merge appends every entry of src into dst in order, combining values of exactly equal keys
// with the Separator. src is left unmodified and keeps owning its memory.
//
// Either all the entries are merged, or dst is left untouched and an error is returned.
func Merge(src, dst *Header) error {
	return appendAll(src, dst)
}

func appendAll(src, dst *Header) error {
	if src.Empty() {
		return nil
	}

	staged := dst.Clone()
	for i := range src.entries {
		if err := staged.AppendBytes(src.entries[i].Key, src.entries[i].Value.Bytes()); err != nil {
			return err
		}
	}

	*dst = *staged
	return nil
}
