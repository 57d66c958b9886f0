package container

import "github.com/joshuapare/storekit/storage"

// RawBox owns one dynamically-sized byte value: a blob whose size is fixed
// at construction rather than by any declared type. The size is the
// metadata that travels with the handle; it cannot be recovered from the
// Storage, so the RawBox records it and sizes every Resolve with it.
type RawBox struct {
	store  storage.Storage[byte]
	handle storage.Handle
	size   int
	live   bool
}

// NewRawBox reserves len(value) bytes in s and copies value into them.
func NewRawBox(s storage.Storage[byte], value []byte) (*RawBox, error) {
	h, err := s.Reserve(len(value))
	if err != nil {
		return nil, err
	}
	copy(s.Resolve(h, len(value)), value)
	return &RawBox{store: s, handle: h, size: len(value), live: true}, nil
}

// Size returns the blob's size in bytes, fixed at construction.
func (b *RawBox) Size() int {
	return b.size
}

// Bytes returns a live view of the blob, or nil if the RawBox has been
// closed. The view stays valid until Close; a RawBox never moves its
// reservation.
func (b *RawBox) Bytes() []byte {
	if !b.live {
		return nil
	}
	return b.store.Resolve(b.handle, b.size)
}

// Close releases the reservation. Calling Close twice is safe.
func (b *RawBox) Close() {
	if !b.live {
		return
	}
	b.store.Release(b.handle, b.size)
	b.live = false
}
