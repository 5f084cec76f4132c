// Package hostfs abstracts the file operations performed against the host
// application's installation and the backup directory. The installer and
// verifier only ever touch files through a Store, so tests can run against
// the in-memory implementation without a real GRC install.
package hostfs

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store is the capability surface the installer needs: read, write,
// existence and content hashing. Implementations must be safe for the
// single-process, sequential use this tool performs.
type Store interface {
	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// Exists reports whether a regular file exists at path.
	Exists(path string) bool

	// Hash returns the hex-encoded SHA-256 digest of the file at path.
	Hash(path string) (string, error)

	// Remove deletes the file at path. Removing a missing file is an error.
	Remove(path string) error
}

// HashBytes returns the hex-encoded SHA-256 digest of data. Used to compare
// on-disk files against theme content that was read through other means.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum)
}

// OS is a Store backed by the real filesystem.
type OS struct{}

// NewOS returns a Store backed by the operating system.
func NewOS() *OS {
	return &OS{}
}

// ReadFile implements Store.
func (o *OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) // #nosec G304 - paths are derived from the host file map
}

// WriteFile implements Store. Parent directories are created with 0755.
func (o *OS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if dir := parentDir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, perm) // #nosec G306 - host files keep their conventional modes
}

// Exists implements Store.
func (o *OS) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Hash implements Store.
func (o *OS) Hash(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 - paths are derived from the host file map
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Remove implements Store.
func (o *OS) Remove(path string) error {
	return os.Remove(path)
}

// parentDir returns the directory portion of path, or "" when the path has
// no meaningful parent to create.
func parentDir(path string) string {
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return ""
	}
	return dir
}
