package storage

// Inline is a fixed-capacity Storage whose backing buffer is owned by the
// storage value itself and allocated exactly once, at construction. It never
// allocates afterwards: reserve and grow fail with ErrNoSpace the moment a
// request exceeds the fixed capacity, which makes the boundary deterministic.
//
// An Inline storage backs at most one reservation at a time, issued as
// handle 0 (an offset into the buffer). It is the backing of choice for
// containers with a known worst-case size that must not touch the allocator
// on the hot path.
type Inline[T any] struct {
	single[T]
}

// NewInline constructs an inline storage with room for capacity elements.
// The buffer is allocated here and never again.
func NewInline[T any](capacity int) *Inline[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Inline[T]{single[T]{buf: make([]T, capacity)}}
}

// Compile-time interface check
var _ Storage[byte] = (*Inline[byte])(nil)
