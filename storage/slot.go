package storage

// Slot is Inline over a caller-supplied buffer: the same fixed-capacity,
// single-reservation contract, but the backing bytes belong to the caller
// (a stack array, a section of a larger buffer, a mapped region). Slot never
// allocates. The caller must keep the buffer alive for the storage's
// lifetime and must not mutate it behind the storage's back.
type Slot[T any] struct {
	single[T]
}

// NewSlot constructs a slot storage over buf. The storage reserves from
// buf's full length; any prior contents are visible through Resolve.
func NewSlot[T any](buf []T) *Slot[T] {
	return &Slot[T]{single[T]{buf: buf}}
}

// Compile-time interface check
var _ Storage[int] = (*Slot[int])(nil)
