package container

import "github.com/joshuapare/storekit/storage"

// Box owns exactly one value of T inside a one-element reservation. It is
// the storage-backed analog of a uniquely owned pointer: access goes through
// the Storage's resolve, never a raw address.
//
// Only one Box may reference a given reservation. Copying the Box struct
// does not duplicate the value, it duplicates ownership, so treat a Box as
// move-only: pass pointers around and let exactly one owner call Close or
// IntoInner.
type Box[T any] struct {
	store  storage.Storage[T]
	handle storage.Handle
	live   bool
}

// NewBox reserves room for one T in s and moves value into it.
func NewBox[T any](s storage.Storage[T], value T) (*Box[T], error) {
	h, err := s.Reserve(1)
	if err != nil {
		return nil, err
	}
	s.Resolve(h, 1)[0] = value
	return &Box[T]{store: s, handle: h, live: true}, nil
}

// Get returns a live pointer to the boxed value, or nil if the Box has been
// consumed. The pointer stays valid until the Box is closed or consumed;
// a Box never moves its reservation.
func (b *Box[T]) Get() *T {
	if !b.live {
		return nil
	}
	return &b.store.Resolve(b.handle, 1)[0]
}

// Set overwrites the boxed value, reporting whether the Box is still live.
func (b *Box[T]) Set(value T) bool {
	if !b.live {
		return false
	}
	b.store.Resolve(b.handle, 1)[0] = value
	return true
}

// IntoInner moves the value out, releases the reservation, and leaves the
// Box inert. Calling it on an inert Box returns the zero value.
func (b *Box[T]) IntoInner() T {
	var zero T
	if !b.live {
		return zero
	}
	region := b.store.Resolve(b.handle, 1)
	value := region[0]
	region[0] = zero
	b.store.Release(b.handle, 1)
	b.live = false
	return value
}

// Close releases the reservation. Calling Close twice is safe.
func (b *Box[T]) Close() {
	if !b.live {
		return
	}
	var zero T
	b.store.Resolve(b.handle, 1)[0] = zero
	b.store.Release(b.handle, 1)
	b.live = false
}
