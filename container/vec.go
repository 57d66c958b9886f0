package container

import (
	"github.com/joshuapare/storekit/internal/buf"
	"github.com/joshuapare/storekit/storage"
)

// Vec is a growable contiguous sequence of T backed by a Storage. It owns
// exactly one reservation (none while empty with zero capacity) and releases
// it on Close. Elements occupy [0, Len) within the reservation.
//
// A mutation that needs more room asks the Storage to grow the reservation;
// when the Storage refuses, the operation fails with the Storage's error and
// the Vec is left exactly as it was. Removing elements never shrinks the
// reservation; only ShrinkToFit does.
type Vec[T any] struct {
	store    storage.Storage[T]
	handle   storage.Handle
	length   int
	capacity int
}

// NewVec constructs an empty Vec over s. No reservation is made until the
// first element arrives.
func NewVec[T any](s storage.Storage[T]) *Vec[T] {
	return &Vec[T]{store: s}
}

// NewVecCapacity constructs a Vec over s with an eager reservation for at
// least capacity elements.
func NewVecCapacity[T any](s storage.Storage[T], capacity int) (*Vec[T], error) {
	v := &Vec[T]{store: s}
	if err := v.ReserveExact(capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// VecFromRawParts reconstructs a Vec from a storage, handle, length, and
// capacity previously obtained from RawParts. The handle must identify a
// live reservation of capacity elements in s, of which the first length are
// initialized.
func VecFromRawParts[T any](s storage.Storage[T], h storage.Handle, length, capacity int) *Vec[T] {
	return &Vec[T]{store: s, handle: h, length: length, capacity: capacity}
}

// RawParts splits the Vec into its storage, handle, length, and capacity,
// transferring ownership of the reservation to the caller. The Vec is left
// empty and inert.
func (v *Vec[T]) RawParts() (storage.Storage[T], storage.Handle, int, int) {
	s, h, l, c := v.store, v.handle, v.length, v.capacity
	v.handle, v.length, v.capacity = 0, 0, 0
	return s, h, l, c
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	return v.length
}

// Cap returns the reservation's element capacity.
func (v *Vec[T]) Cap() int {
	return v.capacity
}

// ensure makes room for extra more elements, growing geometrically.
func (v *Vec[T]) ensure(extra int) error {
	need, ok := buf.AddOverflowSafe(v.length, extra)
	if !ok {
		return storage.ErrSizeOverflow
	}
	if need <= v.capacity {
		return nil
	}
	h, c, err := reserveRegion(v.store, v.handle, v.capacity, need)
	if err != nil {
		return err
	}
	v.handle, v.capacity = h, c
	return nil
}

// Reserve makes room for at least extra more elements using the geometric
// growth policy. Prefer this over ReserveExact when more pushes will follow.
func (v *Vec[T]) Reserve(extra int) error {
	return v.ensure(extra)
}

// ReserveExact makes room for exactly Len+extra elements, without growth
// padding.
func (v *Vec[T]) ReserveExact(extra int) error {
	need, ok := buf.AddOverflowSafe(v.length, extra)
	if !ok {
		return storage.ErrSizeOverflow
	}
	if need <= v.capacity {
		return nil
	}
	var (
		h   storage.Handle
		err error
	)
	if v.capacity == 0 {
		h, err = v.store.Reserve(need)
	} else {
		h, err = v.store.Grow(v.handle, v.capacity, need)
	}
	if err != nil {
		return err
	}
	v.handle, v.capacity = h, need
	return nil
}

// Push appends value. On allocation failure the Vec is unchanged.
func (v *Vec[T]) Push(value T) error {
	if err := v.ensure(1); err != nil {
		return err
	}
	v.region()[v.length] = value
	v.length++
	return nil
}

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	region := v.region()
	v.length--
	value := region[v.length]
	region[v.length] = zero // release references held by the vacated slot
	return value, true
}

// Insert places value at index, shifting later elements right. Fails with
// ErrIndexRange when index is outside [0, Len], or with the Storage's error
// when growth fails; either way the Vec is unchanged.
func (v *Vec[T]) Insert(index int, value T) error {
	if index < 0 || index > v.length {
		return ErrIndexRange
	}
	if err := v.ensure(1); err != nil {
		return err
	}
	region := v.region()
	copy(region[index+1:v.length+1], region[index:v.length])
	region[index] = value
	v.length++
	return nil
}

// Remove deletes and returns the element at index, shifting later elements
// left. Returns false when index is out of range.
func (v *Vec[T]) Remove(index int) (T, bool) {
	var zero T
	if index < 0 || index >= v.length {
		return zero, false
	}
	region := v.region()
	value := region[index]
	copy(region[index:v.length-1], region[index+1:v.length])
	v.length--
	region[v.length] = zero
	return value, true
}

// Append appends all values. On allocation failure the Vec is unchanged.
func (v *Vec[T]) Append(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	if err := v.ensure(len(values)); err != nil {
		return err
	}
	copy(v.region()[v.length:], values)
	v.length += len(values)
	return nil
}

// Get returns the element at index.
func (v *Vec[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= v.length {
		return zero, false
	}
	return v.region()[index], true
}

// Set overwrites the element at index, reporting whether index was in range.
func (v *Vec[T]) Set(index int, value T) bool {
	if index < 0 || index >= v.length {
		return false
	}
	v.region()[index] = value
	return true
}

// Slice returns a live view of the elements. The view is invalidated by any
// operation that grows, shrinks, or releases the reservation.
func (v *Vec[T]) Slice() []T {
	if v.capacity == 0 {
		return nil
	}
	return v.region()[:v.length]
}

// Truncate drops elements from the end until Len is at most n. Capacity is
// unchanged.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.length {
		return
	}
	var zero T
	region := v.region()
	for i := n; i < v.length; i++ {
		region[i] = zero
	}
	v.length = n
}

// Clear drops all elements, keeping the reservation.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// ShrinkToFit asks the Storage to trim the reservation to exactly Len
// elements. An empty Vec releases its reservation entirely.
func (v *Vec[T]) ShrinkToFit() error {
	if v.capacity == v.length {
		return nil
	}
	if v.length == 0 {
		v.store.Release(v.handle, v.capacity)
		v.handle, v.capacity = 0, 0
		return nil
	}
	h, err := v.store.Shrink(v.handle, v.capacity, v.length)
	if err != nil {
		return err
	}
	v.handle, v.capacity = h, v.length
	return nil
}

// Close releases the reservation back to the Storage. The Vec is empty and
// reusable afterwards; calling Close twice is safe.
func (v *Vec[T]) Close() {
	if v.capacity == 0 {
		v.length = 0
		return
	}
	v.store.Release(v.handle, v.capacity)
	v.handle, v.length, v.capacity = 0, 0, 0
}

func (v *Vec[T]) region() []T {
	return v.store.Resolve(v.handle, v.capacity)
}
