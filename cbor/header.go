package cbor

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/indigo-web/sxg/buffer"
	"github.com/indigo-web/sxg/header"
	"github.com/indigo-web/sxg/internal/strutil"
)

// GroupSeparator joins values of keys which become equal after lowercasing. Unlike
// header.Separator, it carries no whitespace.
const GroupSeparator = ","

// Field is a single entry of the canonical form of a header map.
type Field struct {
	Key   string
	Value []byte
}

// Canonicalize returns the fields in the order they are encoded in: keys are lowercased,
// values of equal keys are joined by GroupSeparator in the insertion order, and fields are
// sorted by their encoded keys, which means shorter keys go first and keys of the same
// length are compared bytewise. The map itself isn't modified.
func Canonicalize(h *header.Header) []Field {
	fields := make([]Field, 0, h.Len())
	index := make(map[string]int, h.Len())

	for key := range h.Keys() {
		folded := strutil.ToLower(key)
		if _, seen := index[folded]; seen {
			continue
		}

		index[folded] = len(fields)
		fields = append(fields, Field{
			Key:   folded,
			Value: strutil.Join(nil, h.ValuesFold(key), GroupSeparator),
		})
	}

	slices.SortFunc(fields, compareFields)

	return fields
}

// compareFields orders fields the same way their encoded keys compare bytewise. As all of
// them are text strings, the length head decides first.
func compareFields(a, b Field) int {
	if c := cmp.Compare(len(a.Key), len(b.Key)); c != 0 {
		return c
	}

	return strings.Compare(a.Key, b.Key)
}

// AppendHeader appends the canonical encoding of the header map to dst.
func AppendHeader(dst []byte, h *header.Header) []byte {
	fields := Canonicalize(h)
	dst = AppendHead(dst, TypeMap, uint64(len(fields)))

	for _, field := range fields {
		dst = AppendText(dst, field.Key)
		dst = AppendHead(dst, TypeText, uint64(len(field.Value)))
		dst = append(dst, field.Value...)
	}

	return dst
}

// SerializeHeader writes the canonical CBOR map of the header. Either the whole map is
// written, or an error is returned and out is left untouched.
func SerializeHeader(h *header.Header, out *buffer.Buffer) error {
	if err := write(out, AppendHeader(nil, h)); err != nil {
		return fmt.Errorf("serialize %d header fields: %w", h.Len(), err)
	}

	return nil
}

// Marshal returns the canonical CBOR map of the header in a freshly allocated slice.
func Marshal(h *header.Header) []byte {
	return AppendHeader(nil, h)
}
