package stuffer

import "errors"

var (
	// Bounds violations.
	ErrOutOfData    = errors.New("stuffer: not enough data available")
	ErrOutOfSpace   = errors.New("stuffer: not enough space remaining")
	ErrSizeMismatch = errors.New("stuffer: size mismatch")

	// Invalid state.
	ErrFreed              = errors.New("stuffer: use of freed stuffer")
	ErrTainted            = errors.New("stuffer: resize of tainted stuffer")
	ErrNotGrowable        = errors.New("stuffer: resize of static stuffer")
	ErrShrinkInUse        = errors.New("stuffer: resize would discard written data")
	ErrInvalidReservation = errors.New("stuffer: invalid reservation")

	// Malformed input.
	ErrInvalidBase64 = errors.New("stuffer: invalid base64")
	ErrInvalidHex    = errors.New("stuffer: invalid hex")
	ErrMismatch      = errors.New("stuffer: unexpected data")
	ErrNotFound      = errors.New("stuffer: target not found")
	ErrValueTooLarge = errors.New("stuffer: value too large for field")
)
