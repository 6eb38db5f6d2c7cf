package cbor

import (
	"fmt"

	fxcbor "github.com/fxamacker/cbor/v2"
)

// Diagnose returns the RFC 8949 diagnostic notation of a single encoded item, e.g.
// {"foo": "bar"}. Trailing bytes are reported as an error.
func Diagnose(data []byte) (string, error) {
	notation, rest, err := fxcbor.DiagnoseFirst(data)
	if err != nil {
		return "", err
	}

	if len(rest) > 0 {
		return "", fmt.Errorf("cbor: %d bytes of extraneous data after the first item", len(rest))
	}

	return notation, nil
}
