package storage

import (
	"fmt"

	"github.com/joshuapare/storekit/internal/buf"
	"github.com/joshuapare/storekit/internal/mmfile"
)

// mappedPageSize is the granularity the backing file grows by. Growing in
// 4KB pages keeps remaps rare without bloating small files.
const mappedPageSize = 4096

// Mapped is a byte Storage backed by a memory-mapped file. Like Inline it
// backs a single reservation at a time (handle 0), but its capacity grows on
// demand: Grow extends the file in 4KB pages and remaps, so the resolved
// region moves on growth but survives process restarts.
//
// Reserving over a pre-existing file exposes the file's bytes as the
// reservation's initial contents, which is how a previously flushed
// container is reopened. Flush msyncs the mapping; Close unmaps and closes
// the file without releasing the on-disk bytes.
type Mapped struct {
	file   *mmfile.File
	active bool
}

// OpenMapped opens (creating if necessary) the file at path as a mapped
// storage. The caller owns the returned storage and must Close it.
func OpenMapped(path string) (*Mapped, error) {
	f, err := mmfile.Open(path, 0)
	if err != nil {
		return nil, err
	}
	return &Mapped{file: f}, nil
}

// Reserve claims the single reservation. If the file is smaller than count
// bytes it is extended; existing file contents within count are preserved.
func (s *Mapped) Reserve(count int) (Handle, error) {
	if count < 0 {
		return 0, ErrBadCount
	}
	if s.active {
		return 0, ErrNoSpace
	}
	if count > len(s.file.Bytes()) {
		if err := s.file.Grow(pageAlign(int64(count))); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrGrowFail, err)
		}
	}
	s.active = true
	return 0, nil
}

// Grow extends the reservation, remapping the file when the current mapping
// is too small. On failure the reservation and file are untouched.
func (s *Mapped) Grow(h Handle, oldCount, newCount int) (Handle, error) {
	if oldCount < 0 || newCount < oldCount {
		return h, ErrBadCount
	}
	if newCount > len(s.file.Bytes()) {
		if err := s.file.Grow(pageAlign(int64(newCount))); err != nil {
			return h, fmt.Errorf("%w: %v", ErrGrowFail, err)
		}
	}
	return h, nil
}

// Shrink is bookkeeping only; the file never shrinks.
func (s *Mapped) Shrink(h Handle, oldCount, newCount int) (Handle, error) {
	if newCount < 0 || newCount > oldCount {
		return h, ErrBadCount
	}
	return h, nil
}

// Release frees the reservation. The on-disk bytes are kept.
func (s *Mapped) Release(h Handle, count int) {
	s.active = false
}

// Resolve returns the mapped region sized to count bytes. A span outside
// the current mapping yields nil rather than a panic.
func (s *Mapped) Resolve(h Handle, count int) []byte {
	region, ok := buf.Region(s.file.Bytes(), int(h), count)
	if !ok {
		return nil
	}
	return region
}

// Flush synchronously writes the mapped contents to disk.
func (s *Mapped) Flush() error {
	return s.file.Sync()
}

// Close unmaps and closes the backing file. Any containers over this storage
// must be done mutating before Close; their resolved regions are invalidated.
func (s *Mapped) Close() error {
	return s.file.Close()
}

// pageAlign returns n aligned up to the next 4KB boundary.
func pageAlign(n int64) int64 {
	return (n + mappedPageSize - 1) &^ (mappedPageSize - 1)
}

// Compile-time interface check
var _ Storage[byte] = (*Mapped)(nil)
