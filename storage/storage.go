package storage

// Handle identifies a reservation within the Storage instance that issued it.
//
// A Handle is an opaque token, not an address: its representation is a uint32
// chosen by the issuing Storage (typically a slot index or element offset).
// It is valid only for the exact Storage instance that produced it, and only
// until that instance releases it. Resolving a Handle against any other
// Storage instance, or after release, is a caller contract violation.
// Handles carry no generation or validity tag.
type Handle uint32

// Storage is the capability every backing strategy must satisfy: capacity
// negotiation, handle issuance, handle resolution, growth/shrink, and
// release. Element size and alignment are carried by the type parameter T,
// so all operations are expressed in element counts.
//
// Implementations:
//   - Heap:   slot table over independently allocated regions (the default)
//   - Inline: fixed-capacity single-slot buffer owned by the storage
//   - Slot:   fixed-capacity single-slot over a caller-supplied buffer
//   - Arena:  bump-pointer slab with many live reservations
//   - Mapped: single-slot byte storage backed by a memory-mapped file
//
// Storage instances are not synchronized. Callers sharing one instance
// across goroutines must supply their own mutual exclusion.
type Storage[T any] interface {
	// Reserve requests room for count contiguous elements. On success the
	// returned Handle resolves to a region of at least count elements.
	Reserve(count int) (Handle, error)

	// Grow resizes the reservation identified by h from oldCount to
	// newCount elements, newCount >= oldCount. The first oldCount elements
	// are preserved at whatever region the returned Handle resolves to; the
	// Handle may change and callers must not assume region stability across
	// a successful Grow. On failure the original reservation is untouched
	// and h remains valid.
	Grow(h Handle, oldCount, newCount int) (Handle, error)

	// Shrink resizes the reservation identified by h from oldCount down to
	// newCount elements, newCount <= oldCount. Same move/no-move freedom as
	// Grow; implementations may make this a bookkeeping no-op.
	Shrink(h Handle, oldCount, newCount int) (Handle, error)

	// Release returns the reservation to the storage. Releasing the same
	// still-valid handle twice is a caller contract violation.
	Release(h Handle, count int)

	// Resolve yields the live region backing a currently-valid handle,
	// sized to count elements. The region is stable between any two
	// operations that do not themselves mutate that handle's reservation.
	// Implementations may return nil for a span that is detectably outside
	// the backing; otherwise a bad handle or count is a contract violation.
	Resolve(h Handle, count int) []T
}
