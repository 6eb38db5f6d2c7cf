package cbor

import (
	"github.com/indigo-web/sxg/buffer"
	"github.com/indigo-web/sxg/errors"
)

// write appends the encoded item to out at once, so nothing is written if it doesn't fit.
func write(out *buffer.Buffer, item []byte) error {
	if !out.Append(item) {
		return errors.ErrTooLarge
	}

	return nil
}

// WriteMapHeader writes the head of a map consisting of n key/value pairs.
func WriteMapHeader(n uint64, out *buffer.Buffer) error {
	var scratch [9]byte
	return write(out, AppendHead(scratch[:0], TypeMap, n))
}

func WriteArrayHeader(n uint64, out *buffer.Buffer) error {
	var scratch [9]byte
	return write(out, AppendHead(scratch[:0], TypeArray, n))
}

func WriteUint(v uint64, out *buffer.Buffer) error {
	var scratch [9]byte
	return write(out, AppendHead(scratch[:0], TypeUint, v))
}

// WriteTextString writes the string verbatim, prefixed by its length. The string isn't
// validated to be UTF-8.
func WriteTextString(str string, out *buffer.Buffer) error {
	if !out.Fits(HeadLen(uint64(len(str))) + len(str)) {
		return errors.ErrTooLarge
	}

	var scratch [9]byte
	out.Append(AppendHead(scratch[:0], TypeText, uint64(len(str))))
	out.AppendString(str)
	return nil
}

func WriteByteString(data []byte, out *buffer.Buffer) error {
	if !out.Fits(HeadLen(uint64(len(data))) + len(data)) {
		return errors.ErrTooLarge
	}

	var scratch [9]byte
	out.Append(AppendHead(scratch[:0], TypeBytes, uint64(len(data))))
	out.Append(data)
	return nil
}
