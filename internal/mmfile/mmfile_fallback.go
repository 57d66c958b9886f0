//go:build !unix

// Package mmfile provides platform-specific helpers for growable read-write
// memory-mapped files.
package mmfile

import "os"

// File emulates a mapped file with an in-memory buffer when mmap is not
// available. Sync writes the buffer back to the file.
type File struct {
	path string
	data []byte
}

// Open reads the whole file into memory, padding it to minSize.
func Open(path string, minSize int64) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		data = nil
	}
	if int64(len(data)) < minSize {
		data = append(data, make([]byte, minSize-int64(len(data)))...)
	}
	return &File{path: path, data: data}, nil
}

// Bytes returns the buffered contents. The slice is invalidated by Grow and Close.
func (m *File) Bytes() []byte {
	return m.data
}

// Grow extends the buffer to newSize bytes.
func (m *File) Grow(newSize int64) error {
	if newSize <= int64(len(m.data)) {
		return nil
	}
	m.data = append(m.data, make([]byte, newSize-int64(len(m.data)))...)
	return nil
}

// Sync writes the buffer back to the file.
func (m *File) Sync() error {
	return os.WriteFile(m.path, m.data, 0o644)
}

// Close flushes and drops the buffer. Double-close is a no-op.
func (m *File) Close() error {
	if m.data == nil {
		return nil
	}
	err := m.Sync()
	m.data = nil
	return err
}
