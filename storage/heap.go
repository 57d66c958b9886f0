package storage

// Heap is the default Storage: each reservation lives in its own
// independently allocated region, so capacity is bounded only by available
// memory. Handles are indices into an internal slot table, which keeps them
// stable across grow and shrink even when the underlying region moves.
//
// Grow resizes in place when the region's spare capacity already covers the
// request, otherwise it allocates a new region and copies the preserved
// prefix. Released slot indices are recycled for later reservations.
type Heap[T any] struct {
	slots [][]T
	free  []Handle
}

// NewHeap constructs an empty heap storage.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Reserve allocates a fresh region of count elements.
func (s *Heap[T]) Reserve(count int) (Handle, error) {
	if count < 0 {
		return 0, ErrBadCount
	}
	region := make([]T, count)
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[h] = region
		return h, nil
	}
	h := Handle(len(s.slots))
	s.slots = append(s.slots, region)
	return h, nil
}

// Grow extends the reservation to newCount elements. The handle is always
// stable: slot identity survives an internal move of the region.
func (s *Heap[T]) Grow(h Handle, oldCount, newCount int) (Handle, error) {
	if oldCount < 0 || newCount < oldCount {
		return h, ErrBadCount
	}
	region := s.slots[h]
	if newCount <= cap(region) {
		// In-place resize: the region already has room.
		s.slots[h] = region[:newCount]
		return h, nil
	}
	grown := make([]T, newCount)
	copy(grown, region[:oldCount])
	s.slots[h] = grown
	return h, nil
}

// Shrink trims the reservation to newCount elements. The spare capacity is
// retained by the region, so this is bookkeeping only.
func (s *Heap[T]) Shrink(h Handle, oldCount, newCount int) (Handle, error) {
	if newCount < 0 || newCount > oldCount {
		return h, ErrBadCount
	}
	s.slots[h] = s.slots[h][:newCount]
	return h, nil
}

// Release frees the reservation and recycles its slot index.
func (s *Heap[T]) Release(h Handle, count int) {
	s.slots[h] = nil
	s.free = append(s.free, h)
}

// Resolve returns the live region for h, sized to count elements.
func (s *Heap[T]) Resolve(h Handle, count int) []T {
	return s.slots[h][:count]
}

// Compile-time interface check
var _ Storage[int] = (*Heap[int])(nil)
