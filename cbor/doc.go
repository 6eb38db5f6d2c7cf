// Package cbor implements the canonical subset of CBOR (RFC 7049 §3.9) needed to sign HTTP
// exchanges.
//
// Supported:
//   - Major types 0, 2, 3, 4 and 5 with definite, minimally encoded lengths.
//   - Header maps: keys are lowercased, values of keys equal after lowercasing are joined
//     with a comma, and the resulting map is sorted in the canonical key order.
//
// Unsupported:
//   - Negative integers, tags, floating-point numbers.
//   - Indefinite-length items.
//   - Parsing. Diagnose renders already encoded data for humans only.
package cbor
