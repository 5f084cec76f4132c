package hostfs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Mem is an in-memory Store used by tests. Paths are normalised with
// filepath.Clean so the same file map constants work against it.
type Mem struct {
	files map[string][]byte
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{files: make(map[string][]byte)}
}

// Seed writes initial content without going through WriteFile, convenient
// for arranging test fixtures.
func (m *Mem) Seed(path string, data []byte) {
	m.files[filepath.Clean(path)] = append([]byte(nil), data...)
}

// ReadFile implements Store.
func (m *Mem) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// WriteFile implements Store.
func (m *Mem) WriteFile(path string, data []byte, _ os.FileMode) error {
	m.files[filepath.Clean(path)] = append([]byte(nil), data...)
	return nil
}

// Exists implements Store.
func (m *Mem) Exists(path string) bool {
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

// Hash implements Store.
func (m *Mem) Hash(path string) (string, error) {
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}
	return HashBytes(data), nil
}

// Remove implements Store.
func (m *Mem) Remove(path string) error {
	clean := filepath.Clean(path)
	if _, ok := m.files[clean]; !ok {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}
	delete(m.files, clean)
	return nil
}
