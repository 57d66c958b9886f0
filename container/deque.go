package container

import (
	"github.com/joshuapare/storekit/internal/buf"
	"github.com/joshuapare/storekit/storage"
)

// Deque is a growable double-ended sequence of T backed by a Storage. The
// elements occupy a possibly wrapped ring [head, head+Len) mod Cap within
// the reservation; pushes and pops at either end only move head and length,
// never existing elements.
//
// Because a grown region's indices no longer correspond to the old wrapped
// ones, the ring is linearized in place (head rotated to 0) before every
// Grow or Shrink call. Failure semantics match Vec: an allocation error
// leaves the Deque in its prior state, except that linearization may have
// reordered the backing region (the logical contents are unchanged).
type Deque[T any] struct {
	store    storage.Storage[T]
	handle   storage.Handle
	head     int
	length   int
	capacity int
}

// NewDeque constructs an empty Deque over s. No reservation is made until
// the first element arrives.
func NewDeque[T any](s storage.Storage[T]) *Deque[T] {
	return &Deque[T]{store: s}
}

// NewDequeCapacity constructs a Deque over s with an eager reservation for
// at least capacity elements.
func NewDequeCapacity[T any](s storage.Storage[T], capacity int) (*Deque[T], error) {
	d := &Deque[T]{store: s}
	if err := d.reserveExact(capacity); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.length
}

// Cap returns the reservation's element capacity.
func (d *Deque[T]) Cap() int {
	return d.capacity
}

// IsEmpty reports whether the Deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.length == 0
}

// IsContiguous reports whether the elements occupy a single unwrapped span.
func (d *Deque[T]) IsContiguous() bool {
	return d.head+d.length <= d.capacity
}

// phys maps a logical index to its physical slot in the ring.
func (d *Deque[T]) phys(i int) int {
	p := d.head + i
	if p >= d.capacity {
		p -= d.capacity
	}
	return p
}

func (d *Deque[T]) region() []T {
	return d.store.Resolve(d.handle, d.capacity)
}

// ensure makes room for extra more elements, linearizing before growth.
func (d *Deque[T]) ensure(extra int) error {
	need, ok := buf.AddOverflowSafe(d.length, extra)
	if !ok {
		return storage.ErrSizeOverflow
	}
	if need <= d.capacity {
		return nil
	}
	if d.capacity > 0 {
		d.linearize()
	}
	h, c, err := reserveRegion(d.store, d.handle, d.capacity, need)
	if err != nil {
		return err
	}
	d.handle, d.capacity = h, c
	return nil
}

// linearize rotates the ring in place so the elements start at slot 0.
// Three-reversal rotation keeps it allocation-free.
func (d *Deque[T]) linearize() {
	if d.head == 0 {
		return
	}
	region := d.region()
	reverse(region[:d.head])
	reverse(region[d.head:])
	reverse(region)
	d.head = 0
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Reserve makes room for at least extra more elements using the geometric
// growth policy.
func (d *Deque[T]) Reserve(extra int) error {
	return d.ensure(extra)
}

func (d *Deque[T]) reserveExact(capacity int) error {
	if capacity <= d.capacity {
		return nil
	}
	if d.capacity > 0 {
		d.linearize()
	}
	var (
		h   storage.Handle
		err error
	)
	if d.capacity == 0 {
		h, err = d.store.Reserve(capacity)
	} else {
		h, err = d.store.Grow(d.handle, d.capacity, capacity)
	}
	if err != nil {
		return err
	}
	d.handle, d.capacity = h, capacity
	return nil
}

// PushBack appends value at the logical end. On allocation failure the
// Deque is unchanged.
func (d *Deque[T]) PushBack(value T) error {
	if err := d.ensure(1); err != nil {
		return err
	}
	d.region()[d.phys(d.length)] = value
	d.length++
	return nil
}

// PushFront prepends value at the logical start. On allocation failure the
// Deque is unchanged.
func (d *Deque[T]) PushFront(value T) error {
	if err := d.ensure(1); err != nil {
		return err
	}
	d.head--
	if d.head < 0 {
		d.head += d.capacity
	}
	d.region()[d.head] = value
	d.length++
	return nil
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	region := d.region()
	value := region[d.head]
	region[d.head] = zero
	d.head++
	if d.head == d.capacity {
		d.head = 0
	}
	d.length--
	if d.length == 0 {
		d.head = 0
	}
	return value, true
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	region := d.region()
	d.length--
	p := d.phys(d.length)
	value := region[p]
	region[p] = zero
	if d.length == 0 {
		d.head = 0
	}
	return value, true
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	return d.At(0)
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	return d.At(d.length - 1)
}

// At returns the element at logical index i.
func (d *Deque[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= d.length {
		return zero, false
	}
	return d.region()[d.phys(i)], true
}

// Set overwrites the element at logical index i, reporting whether i was in
// range.
func (d *Deque[T]) Set(i int, value T) bool {
	if i < 0 || i >= d.length {
		return false
	}
	d.region()[d.phys(i)] = value
	return true
}

// Slices returns the elements as up to two live views in logical order:
// the span from head to the end of the region, then the wrapped remainder.
// An unwrapped Deque returns everything in the first view.
func (d *Deque[T]) Slices() ([]T, []T) {
	if d.length == 0 {
		return nil, nil
	}
	region := d.region()
	if d.IsContiguous() {
		return region[d.head : d.head+d.length], nil
	}
	return region[d.head:], region[:d.head+d.length-d.capacity]
}

// MakeContiguous rotates the ring so all elements form a single span and
// returns a live view of them.
func (d *Deque[T]) MakeContiguous() []T {
	if d.capacity == 0 {
		return nil
	}
	d.linearize()
	return d.region()[:d.length]
}

// ShrinkToFit linearizes, then asks the Storage to trim the reservation to
// exactly Len elements. An empty Deque releases its reservation entirely.
func (d *Deque[T]) ShrinkToFit() error {
	if d.capacity == d.length {
		return nil
	}
	if d.length == 0 {
		d.store.Release(d.handle, d.capacity)
		d.handle, d.head, d.capacity = 0, 0, 0
		return nil
	}
	d.linearize()
	h, err := d.store.Shrink(d.handle, d.capacity, d.length)
	if err != nil {
		return err
	}
	d.handle, d.capacity = h, d.length
	return nil
}

// Clear drops all elements, keeping the reservation.
func (d *Deque[T]) Clear() {
	if d.length == 0 {
		return
	}
	var zero T
	region := d.region()
	for i := 0; i < d.length; i++ {
		region[d.phys(i)] = zero
	}
	d.head, d.length = 0, 0
}

// Close releases the reservation back to the Storage. The Deque is empty
// and reusable afterwards; calling Close twice is safe.
func (d *Deque[T]) Close() {
	if d.capacity == 0 {
		d.head, d.length = 0, 0
		return
	}
	d.store.Release(d.handle, d.capacity)
	d.handle, d.head, d.length, d.capacity = 0, 0, 0, 0
}
