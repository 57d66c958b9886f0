// Package container provides owning, growable containers built generically
// over any storage.Storage: the container code never learns which backing
// strategy it runs on.
//
// # Overview
//
// Each container owns exactly one reservation in its Storage (or none while
// empty) and releases it exactly once, on Close. Every mutation that needs
// more or less room negotiates with the Storage through its Handle; the
// containers never inspect handle internals and never hold raw addresses
// across operations that can move the reservation.
//
// # Containers
//
//   - Box[T]:   one value, the storage-backed analog of a unique pointer
//   - RawBox:   one dynamically-sized byte value with recorded size
//   - Vec[T]:   contiguous growable sequence
//   - Deque[T]: double-ended ring-buffer sequence
//   - Text:     UTF-8 text buffer with validity enforced before commit
//
// # Growth and Failure Semantics
//
// The growable containers share one policy: double the capacity (floor 4),
// never below the immediate need, falling back to an exact-sized request
// when a fixed-capacity storage rejects the padding. Pops and removals
// never shrink the reservation; only ShrinkToFit does.
//
// Any allocation error from the Storage propagates unchanged and leaves the
// container in its prior valid state - a failed push is fully a no-op.
//
// # Usage Example
//
//	v := container.NewVec[int](storage.NewHeap[int]())
//	defer v.Close()
//
//	for i := 1; i <= 5; i++ {
//	    if err := v.Push(i); err != nil {
//	        return err
//	    }
//	}
//
// A fixed-capacity container over Inline storage fails deterministically at
// the boundary:
//
//	t := container.NewText(storage.NewInline[byte](8))
//	_ = t.PushString("hello!")          // fits
//	err := t.PushString("world")        // storage.ErrNoSpace, content intact
//
// # Thread Safety
//
// Containers and their storages are single-threaded by contract. Wrap them
// in your own mutual exclusion for concurrent use.
package container
