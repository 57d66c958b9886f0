package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenGrowSyncClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.bin")

	m, err := Open(path, 16)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := len(m.Bytes()); got != 16 {
		t.Fatalf("len(Bytes()) = %d, want 16", got)
	}
	copy(m.Bytes(), "hello")

	if err := m.Grow(8192); err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if got := len(m.Bytes()); got != 8192 {
		t.Fatalf("len(Bytes()) after grow = %d, want 8192", got)
	}
	if string(m.Bytes()[:5]) != "hello" {
		t.Fatalf("contents lost across grow: %q", m.Bytes()[:5])
	}

	if err := m.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("double Close should be a no-op, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 8192 || string(data[:5]) != "hello" {
		t.Fatalf("file contents wrong: len=%d head=%q", len(data), data[:min(5, len(data))])
	}
}

func TestOpenExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.bin")
	if err := os.WriteFile(path, []byte("persisted"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	if string(m.Bytes()) != "persisted" {
		t.Fatalf("existing contents not visible: %q", m.Bytes())
	}
}

func TestOpenZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")

	m, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(m.Bytes()) != 0 {
		t.Fatalf("expected empty mapping, got %d bytes", len(m.Bytes()))
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
