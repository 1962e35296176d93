package minifmt

import "errors"

// Sentinel errors for template compilation and rendering.
var (
	// ErrUnknownSequence is returned when a '%' is followed by a character
	// outside the recognized escape and style set.
	ErrUnknownSequence = errors.New("unknown sequence")

	// ErrTruncatedSequence is returned when the template ends while an
	// escape sequence still expects more characters.
	ErrTruncatedSequence = errors.New("truncated sequence")

	// ErrInvalidHex is returned when a fixed-length hex run fails to parse.
	ErrInvalidHex = errors.New("invalid hex digits")

	// ErrInvalidCodePoint is returned when a parsed hex value is not a
	// valid Unicode scalar value.
	ErrInvalidCodePoint = errors.New("invalid code point")

	// ErrArgRange is returned by Render when a substitution refers to an
	// argument position at or past the end of the supplied values.
	ErrArgRange = errors.New("argument index out of range")
)
