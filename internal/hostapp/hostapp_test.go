package hostapp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsInstallDir(t *testing.T) {
	dir := t.TempDir()
	if IsInstallDir(dir) {
		t.Error("empty dir should not qualify as an install")
	}

	marker := filepath.Join(dir, "gui", "canvas", "colors.py")
	if err := os.MkdirAll(filepath.Dir(marker), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(marker, []byte("# colors"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsInstallDir(dir) {
		t.Error("dir with gui/canvas/colors.py should qualify")
	}
}

func TestClearBytecodeCaches(t *testing.T) {
	dir := t.TempDir()

	// Layout: two __pycache__ dirs (one nested inside the other's sibling)
	// and one stray .pyc outside any cache dir.
	for _, sub := range []string{"gui/__pycache__", "gui/canvas/__pycache__"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, sub, "colors.cpython-311.pyc"), []byte{0}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "gui", "stale.pyc"), []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "gui", "keep.py"), []byte("# keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := CountBytecodeCaches(dir); got != 3 {
		t.Errorf("CountBytecodeCaches = %d, want 3", got)
	}

	cleared, err := ClearBytecodeCaches(dir)
	if err != nil {
		t.Fatalf("ClearBytecodeCaches failed: %v", err)
	}
	if cleared != 3 {
		t.Errorf("cleared = %d, want 3", cleared)
	}

	if _, err := os.Stat(filepath.Join(dir, "gui", "__pycache__")); !os.IsNotExist(err) {
		t.Error("__pycache__ should be removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "gui", "stale.pyc")); !os.IsNotExist(err) {
		t.Error("stray .pyc should be removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "gui", "keep.py")); err != nil {
		t.Error("regular .py files must be kept")
	}
	if got := CountBytecodeCaches(dir); got != 0 {
		t.Errorf("CountBytecodeCaches after clear = %d, want 0", got)
	}
}
