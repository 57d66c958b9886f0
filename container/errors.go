package container

import "errors"

var (
	// ErrIndexRange indicates an insertion index outside [0, Len].
	ErrIndexRange = errors.New("container: index out of range")

	// ErrInvalidEncoding indicates bytes that do not form valid UTF-8 (or
	// could not be transcoded into it). The text buffer is unchanged.
	ErrInvalidEncoding = errors.New("container: invalid text encoding")

	// ErrNotCharBoundary indicates a byte position inside a multi-byte
	// codepoint. The text buffer is unchanged.
	ErrNotCharBoundary = errors.New("container: position splits a codepoint")
)
