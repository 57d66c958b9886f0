package storage

import (
	"fmt"
	"os"

	"github.com/joshuapare/storekit/internal/buf"
)

// Runtime debug flag for allocation logging - controlled by STOREKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("STOREKIT_LOG_ALLOC") != ""

// Arena is a bump-pointer Storage over a single fixed-capacity slab. Many
// reservations may be live at once; handles are element offsets into the
// slab, so resolved regions stay stable for the arena's whole lifetime.
//
// Key characteristics:
//   - O(1) reservation: pure bump pointer, no free lists
//   - Release is a no-op beyond bookkeeping; freed regions become dead
//     space (except a tail reservation, whose space is reclaimed by
//     rewinding the bump pointer)
//   - Grow extends the most recent reservation in place; growing an older
//     reservation bump-allocates a fresh region and copies the prefix,
//     leaving the old region dead
//
// The slab is allocated once at construction and never moves, which is what
// lets handles double as offsets. When the slab is exhausted, reservations
// fail with ErrNoSpace; an arena is a scratch space, not a general-purpose
// allocator.
type Arena[T any] struct {
	buf  []T
	next int // bump pointer: element offset of the next reservation

	stats ArenaStats
}

// ArenaStats holds internal arena counters for testing and instrumentation.
type ArenaStats struct {
	ReserveCalls int   // Total Reserve() calls
	GrowCalls    int   // Total Grow() calls
	GrowInPlace  int   // Grows satisfied by extending the tail reservation
	GrowMoved    int   // Grows that bump-allocated a new region and copied
	ReleaseCalls int   // Total Release() calls
	DeadElems    int64 // Elements abandoned as dead space (moves and non-tail releases)
	HighWater    int   // Highest bump pointer observed
}

// NewArena constructs an arena with a slab of capacity elements.
func NewArena[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{buf: make([]T, capacity)}
}

// Reserve bump-allocates count elements at the current pointer.
func (a *Arena[T]) Reserve(count int) (Handle, error) {
	if count < 0 {
		return 0, ErrBadCount
	}
	a.stats.ReserveCalls++
	if count > len(a.buf)-a.next {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ARENA] NO SPACE: need=%d free=%d cap=%d\n",
				count, len(a.buf)-a.next, len(a.buf))
		}
		return 0, ErrNoSpace
	}
	h := Handle(a.next)
	a.next += count
	if a.next > a.stats.HighWater {
		a.stats.HighWater = a.next
	}
	return h, nil
}

// Grow extends a reservation. The tail reservation (the most recent one
// still ending at the bump pointer) grows in place; any other reservation
// is moved to a fresh bump allocation and its old region becomes dead space.
func (a *Arena[T]) Grow(h Handle, oldCount, newCount int) (Handle, error) {
	if oldCount < 0 || newCount < oldCount {
		return h, ErrBadCount
	}
	a.stats.GrowCalls++
	start := int(h)
	if start+oldCount == a.next {
		// Tail reservation: extend in place by advancing the pointer.
		if newCount > len(a.buf)-start {
			return h, ErrNoSpace
		}
		a.next = start + newCount
		if a.next > a.stats.HighWater {
			a.stats.HighWater = a.next
		}
		a.stats.GrowInPlace++
		return h, nil
	}
	if newCount > len(a.buf)-a.next {
		return h, ErrNoSpace
	}
	moved := Handle(a.next)
	a.next += newCount
	if a.next > a.stats.HighWater {
		a.stats.HighWater = a.next
	}
	copy(a.buf[moved:int(moved)+oldCount], a.buf[start:start+oldCount])
	a.stats.GrowMoved++
	a.stats.DeadElems += int64(oldCount)
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ARENA] GROW MOVE: %d -> %d (old=%d new=%d dead=%d)\n",
			start, moved, oldCount, newCount, a.stats.DeadElems)
	}
	return moved, nil
}

// Shrink trims a reservation. Only the tail reservation reclaims space, by
// rewinding the bump pointer; shrinking any other reservation is a no-op.
func (a *Arena[T]) Shrink(h Handle, oldCount, newCount int) (Handle, error) {
	if newCount < 0 || newCount > oldCount {
		return h, ErrBadCount
	}
	if int(h)+oldCount == a.next {
		a.next = int(h) + newCount
	}
	return h, nil
}

// Release abandons a reservation. A tail reservation rewinds the bump
// pointer; anywhere else the region becomes dead space forever.
func (a *Arena[T]) Release(h Handle, count int) {
	a.stats.ReleaseCalls++
	if int(h)+count == a.next {
		a.next = int(h)
		return
	}
	a.stats.DeadElems += int64(count)
}

// Resolve returns the live region for h, sized to count elements. A span
// falling outside the slab yields nil rather than a panic.
func (a *Arena[T]) Resolve(h Handle, count int) []T {
	region, ok := buf.Region(a.buf, int(h), count)
	if !ok {
		return nil
	}
	return region
}

// Reset rewinds the arena to empty, invalidating every outstanding handle.
// The slab contents are left as-is; callers that need zeroed memory should
// not rely on Reset.
func (a *Arena[T]) Reset() {
	a.next = 0
}

// Len returns the number of slab elements currently consumed (live or dead).
func (a *Arena[T]) Len() int {
	return a.next
}

// Capacity returns the fixed element capacity of the slab.
func (a *Arena[T]) Capacity() int {
	return len(a.buf)
}

// Stats returns a snapshot of the arena's internal counters.
func (a *Arena[T]) Stats() ArenaStats {
	return a.stats
}

// Compile-time interface check
var _ Storage[int] = (*Arena[int])(nil)
