package hostapp

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ClearBytecodeCaches removes __pycache__ directories and stray .pyc files
// under the install tree so the host can't load stale bytecode for swapped
// modules. Returns the number of entries removed. Entries that can't be
// removed are skipped; a partial clear still forces recompilation of the
// swapped modules in practice.
func ClearBytecodeCaches(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if d.IsDir() && d.Name() == "__pycache__" {
			if rmErr := os.RemoveAll(path); rmErr == nil {
				count++
			}
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".pyc") {
			if rmErr := os.Remove(path); rmErr == nil {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return count, err
	}
	return count, nil
}

// CountBytecodeCaches counts __pycache__ directories and .pyc files without
// removing anything, for the read-only check report.
func CountBytecodeCaches(dir string) int {
	count := 0
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && d.Name() == "__pycache__" {
			count++
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".pyc") {
			count++
		}
		return nil
	})
	return count
}
