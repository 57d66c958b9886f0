package storage

import "errors"

var (
	// ErrNoSpace indicates the backing cannot satisfy the requested capacity.
	// For fixed-capacity storages this is a hard, deterministic boundary, not
	// a retryable condition.
	ErrNoSpace = errors.New("storage: no space for requested capacity")

	// ErrSizeOverflow indicates the requested element count would overflow
	// size arithmetic.
	ErrSizeOverflow = errors.New("storage: size arithmetic overflow")

	// ErrBadCount indicates a negative count, or grow/shrink counts out of
	// order (grow requires newCount >= oldCount, shrink the reverse).
	ErrBadCount = errors.New("storage: count out of range")

	// ErrGrowFail indicates the backing resource could not be extended
	// (for Mapped, a file or mapping failure).
	ErrGrowFail = errors.New("storage: grow failed")
)
