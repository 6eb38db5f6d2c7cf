package cbor

import (
	"encoding/binary"
	"math"
)

// Type is a CBOR major type, the upper 3 bits of an item's initial byte.
type Type byte

const (
	TypeUint Type = iota
	TypeNegInt
	TypeBytes
	TypeText
	TypeArray
	TypeMap
	TypeTag
	TypeOther
)

// Additional information values, selecting the length of the argument following the
// initial byte.
const (
	maxInline = 23
	argUint8  = 24
	argUint16 = 25
	argUint32 = 26
	argUint64 = 27
)

// AppendHead appends the initial byte of the major type together with its argument,
// always choosing the shortest encoding of v.
func AppendHead(dst []byte, major Type, v uint64) []byte {
	initial := byte(major) << 5

	switch {
	case v <= maxInline:
		return append(dst, initial|byte(v))
	case v <= math.MaxUint8:
		return append(dst, initial|argUint8, byte(v))
	case v <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(dst, initial|argUint16), uint16(v))
	case v <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(dst, initial|argUint32), uint32(v))
	default:
		return binary.BigEndian.AppendUint64(append(dst, initial|argUint64), v)
	}
}

// HeadLen returns the number of bytes AppendHead emits for v.
func HeadLen(v uint64) int {
	switch {
	case v <= maxInline:
		return 1
	case v <= math.MaxUint8:
		return 2
	case v <= math.MaxUint16:
		return 3
	case v <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// AppendText appends a text string: its length head followed by the raw bytes.
func AppendText(dst []byte, str string) []byte {
	return append(AppendHead(dst, TypeText, uint64(len(str))), str...)
}

// AppendBytes appends a byte string.
func AppendBytes(dst, data []byte) []byte {
	return append(AppendHead(dst, TypeBytes, uint64(len(data))), data...)
}
