//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-write memory-mapped file. The mapping always covers the
// whole file; Grow extends the file and remaps, so the byte slice returned
// by Bytes is invalidated by Grow and Close.
type File struct {
	f    *os.File
	data []byte
}

// Open opens (creating if necessary) the file at path and maps it
// read-write. When the file is smaller than minSize it is extended first.
func Open(path string, minSize int64) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := info.Size()
	if size < minSize {
		if err := f.Truncate(minSize); err != nil {
			f.Close()
			return nil, err
		}
		size = minSize
	}
	if size > int64(^uint(0)>>1) {
		f.Close()
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	m := &File{f: f}
	if size > 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, int(size),
			unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return nil, err
		}
		m.data = data
	}
	return m, nil
}

// Bytes returns the mapped contents. The slice is invalidated by Grow and Close.
func (m *File) Bytes() []byte {
	return m.data
}

// Grow extends the file to newSize bytes and remaps it. newSize must not be
// smaller than the current size. The previous mapping is invalidated.
func (m *File) Grow(newSize int64) error {
	if newSize < int64(len(m.data)) {
		return fmt.Errorf("mmfile: grow to %d below current size %d", newSize, len(m.data))
	}
	if newSize == int64(len(m.data)) {
		return nil
	}
	if newSize > int64(^uint(0)>>1) {
		return fmt.Errorf("mmfile: file too large to map (%d bytes)", newSize)
	}
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			return err
		}
		m.data = nil
	}
	if err := m.f.Truncate(newSize); err != nil {
		return err
	}
	data, err := unix.Mmap(int(m.f.Fd()), 0, int(newSize),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

// Sync flushes the mapped contents to disk with a synchronous msync.
func (m *File) Sync() error {
	if len(m.data) == 0 {
		return nil
	}
	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close unmaps the file and closes the descriptor. Double-close is a no-op.
func (m *File) Close() error {
	var unmapErr error
	if m.data != nil {
		unmapErr = unix.Munmap(m.data)
		if errors.Is(unmapErr, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			unmapErr = nil
		}
		m.data = nil
	}
	if m.f != nil {
		closeErr := m.f.Close()
		m.f = nil
		if unmapErr != nil {
			return unmapErr
		}
		return closeErr
	}
	return unmapErr
}
