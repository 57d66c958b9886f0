package container

import (
	"github.com/joshuapare/storekit/internal/buf"
	"github.com/joshuapare/storekit/storage"
)

// minCapacity is the floor for the first real reservation. Doubling from a
// tiny capacity would otherwise reallocate on nearly every early push.
const minCapacity = 4

// nextCapacity returns the geometric growth target for a container that
// currently holds capacity elements and needs room for at least need.
// Doubling keeps pushes amortized O(1); the result never under-allocates
// relative to need, and falls back to exactly need when doubling would
// overflow.
func nextCapacity(capacity, need int) int {
	doubled, ok := buf.MulOverflowSafe(capacity, 2)
	if !ok || doubled < need {
		doubled = need
	}
	if doubled < minCapacity {
		doubled = minCapacity
	}
	return doubled
}

// reserveRegion makes the first reservation or grows an existing one to
// hold at least need elements, preferring the geometric target but retrying
// with exactly need when a fixed-capacity storage rejects the padding.
// Returns the (possibly new) handle and the committed capacity. On error the
// original reservation, if any, is untouched.
func reserveRegion[T any](s storage.Storage[T], h storage.Handle, capacity, need int) (storage.Handle, int, error) {
	target := nextCapacity(capacity, need)
	for {
		var (
			nh  storage.Handle
			err error
		)
		if capacity == 0 {
			nh, err = s.Reserve(target)
		} else {
			nh, err = s.Grow(h, capacity, target)
		}
		if err == nil {
			return nh, target, nil
		}
		if target == need {
			return h, capacity, err
		}
		// The padded request did not fit; the exact one still might.
		target = need
	}
}
