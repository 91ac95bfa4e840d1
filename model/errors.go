package model

import "errors"

// Every failure from the chunk and png packages wraps exactly one of these.
var (
	ErrInvalidTypeCode  = errors.New("invalid chunk type code")
	ErrTruncatedInput   = errors.New("truncated input")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrBadPreamble      = errors.New("bad preamble")
	ErrChunkNotFound    = errors.New("chunk not found")
	ErrLengthTooLarge   = errors.New("chunk length too large")
)

// IsFormatError reports whether err came from malformed input rather than
// a lookup miss.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidTypeCode) ||
		errors.Is(err, ErrTruncatedInput) ||
		errors.Is(err, ErrChecksumMismatch) ||
		errors.Is(err, ErrBadPreamble) ||
		errors.Is(err, ErrLengthTooLarge)
}
