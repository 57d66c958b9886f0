// Package storage defines the pluggable backing-memory capability that the
// storekit containers are built over, plus the reference implementations.
//
// # Overview
//
// The package decouples "where elements live" from "how code refers to
// them". A Storage hands out opaque Handles in place of pointers; only the
// issuing Storage instance can turn a Handle back into a live region, via
// Resolve. That split is what lets one container implementation run
// unmodified over a heap region, a fixed buffer, a bump arena, or a
// memory-mapped file.
//
// # The Storage contract
//
// Storage[T] exposes five operations, all in element counts of T:
//
//   - Reserve(count): claim room for count contiguous elements
//   - Grow(h, old, new): extend a reservation, preserving the old prefix
//   - Shrink(h, old, new): trim a reservation (may be a no-op)
//   - Release(h, count): return the reservation
//   - Resolve(h, count): the live region backing a handle
//
// Grow and Shrink may move the region and may return a different Handle;
// on failure the original reservation is always left untouched. Resolve is
// stable between any two operations that do not mutate that reservation.
//
// # Implementations
//
// Heap: the default. Each reservation is an independent allocation; handles
// are slot-table indices and stay stable across moves.
//
// Inline: a fixed buffer allocated once at construction, one reservation at
// a time. Exceeding the capacity is a hard ErrNoSpace, never a reallocation.
//
// Slot: Inline over a caller-supplied buffer; never allocates at all.
//
// Arena: a bump-pointer slab serving many reservations; release is a no-op
// and freed space (other than the tail) is dead forever.
//
// Mapped: a single byte reservation backed by a memory-mapped file, grown
// in 4KB pages, flushed with msync.
//
// # Usage Example
//
//	st := storage.NewInline[int](16)
//	h, err := st.Reserve(4)
//	if err != nil {
//	    return err
//	}
//	region := st.Resolve(h, 4)
//	region[0] = 42
//	...
//	st.Release(h, 4)
//
// # Handle Validity
//
// A Handle pairs with the exact Storage instance that issued it. Handles
// carry no generation tag: resolving a released handle, a foreign handle,
// or releasing twice is a caller contract violation that implementations
// are free not to detect. Containers in package container maintain this
// discipline for you.
//
// # Thread Safety
//
// Storage instances are not thread-safe. Callers must synchronize access
// externally when sharing an instance across goroutines.
package storage
