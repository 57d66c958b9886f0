package storage

import "github.com/joshuapare/storekit/internal/buf"

// single is the shared core of the fixed-capacity single-slot storages
// (Inline and Slot). It holds one backing buffer that is never reallocated
// and tracks at most one live reservation, issued as handle 0. Reserve and
// Grow fail with ErrNoSpace once the request exceeds the buffer; Shrink and
// Release are bookkeeping only, since no external resource is held.
type single[T any] struct {
	buf    []T
	active bool
}

func (s *single[T]) Reserve(count int) (Handle, error) {
	if count < 0 {
		return 0, ErrBadCount
	}
	if s.active || count > len(s.buf) {
		return 0, ErrNoSpace
	}
	s.active = true
	return 0, nil
}

func (s *single[T]) Grow(h Handle, oldCount, newCount int) (Handle, error) {
	if oldCount < 0 || newCount < oldCount {
		return h, ErrBadCount
	}
	if newCount > len(s.buf) {
		// Hard capacity boundary; the existing reservation is untouched.
		return h, ErrNoSpace
	}
	return h, nil
}

func (s *single[T]) Shrink(h Handle, oldCount, newCount int) (Handle, error) {
	if newCount < 0 || newCount > oldCount {
		return h, ErrBadCount
	}
	return h, nil
}

func (s *single[T]) Release(h Handle, count int) {
	s.active = false
}

// Resolve returns the buffer prefix sized to count. A count outside the
// fixed capacity yields nil rather than a panic.
func (s *single[T]) Resolve(h Handle, count int) []T {
	region, ok := buf.Region(s.buf, 0, count)
	if !ok {
		return nil
	}
	return region
}

// Capacity returns the fixed element capacity of the backing buffer.
func (s *single[T]) Capacity() int {
	return len(s.buf)
}
