package errors

import (
	"errors"
)

var (
	ErrTooLarge             = errors.New("too large")
	ErrTooManyHeaders       = errors.New("too much headers")
	ErrHeaderFieldsTooLarge = errors.New("header fields too large")
	ErrHeaderKeyTooLong     = errors.New("header key too long")

	ErrBadHeaderLine = errors.New("malformed header line")
)
