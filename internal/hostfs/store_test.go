package hostfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOSStoreRoundTrip(t *testing.T) {
	store := NewOS()
	path := filepath.Join(t.TempDir(), "nested", "dir", "colors.py")

	if store.Exists(path) {
		t.Fatal("file should not exist before write")
	}

	content := []byte("FLOWGRAPH_BACKGROUND_COLOR = get_color('#000000')\n")
	if err := store.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if !store.Exists(path) {
		t.Error("Exists should report true after write")
	}

	got, err := store.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q, want %q", got, content)
	}

	hash, err := store.Hash(path)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash != HashBytes(content) {
		t.Errorf("Hash = %s, want %s", hash, HashBytes(content))
	}

	if err := store.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if store.Exists(path) {
		t.Error("file should not exist after Remove")
	}
}

func TestOSStoreReadMissing(t *testing.T) {
	store := NewOS()
	_, err := store.ReadFile(filepath.Join(t.TempDir(), "missing.py"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestMemStoreMatchesOSBehaviour(t *testing.T) {
	store := NewMem()
	path := "/usr/lib/python3/dist-packages/gnuradio/grc/gui/canvas/colors.py"

	if store.Exists(path) {
		t.Fatal("empty store should not contain files")
	}

	_, err := store.ReadFile(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist for missing file, got %v", err)
	}

	content := []byte("STOCK_COLORS")
	if err := store.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := store.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "STOCK_COLORS" {
		t.Errorf("content mismatch: got %q", got)
	}

	// Mutating the returned slice must not affect the store.
	got[0] = 'X'
	again, _ := store.ReadFile(path)
	if string(again) != "STOCK_COLORS" {
		t.Error("ReadFile should return a copy, not the backing slice")
	}

	hash, err := store.Hash(path)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash != HashBytes(content) {
		t.Errorf("Hash = %s, want %s", hash, HashBytes(content))
	}

	if err := store.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := store.Remove(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("removing a missing file should fail with os.ErrNotExist, got %v", err)
	}
}

func TestMemStoreCleansPaths(t *testing.T) {
	store := NewMem()
	store.Seed("/backups/../backups/gui/block.py", []byte("a"))
	if !store.Exists("/backups/gui/block.py") {
		t.Error("paths should be normalised with filepath.Clean")
	}
}
