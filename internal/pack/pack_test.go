package pack

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTarGz(t *testing.T, dir string, entries map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)
	for name, content := range entries {
		hdr := &tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gzw.Close(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "pack.tar.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeZip(t *testing.T, dir string, entries map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "pack.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInstallTarGz(t *testing.T) {
	tmp := t.TempDir()
	archive := writeTarGz(t, tmp, map[string]string{
		"neon/gui/canvas/colors.py":  "# neon colors\n",
		"neon/description.txt":       "Neon glow\n",
		"vapor/gui/canvas/colors.py": "# vapor colors\n",
		"README.md":                  "ignored\n",
	})

	themesDir := filepath.Join(tmp, "themes")
	themes, err := Install(archive, themesDir, nil)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if want := []string{"neon", "vapor"}; !reflect.DeepEqual(themes, want) {
		t.Errorf("themes = %v, want %v", themes, want)
	}

	data, err := os.ReadFile(filepath.Join(themesDir, "neon", "gui", "canvas", "colors.py"))
	if err != nil {
		t.Fatalf("extracted file missing: %v", err)
	}
	if string(data) != "# neon colors\n" {
		t.Errorf("extracted content = %q", data)
	}
	if _, err := os.Stat(filepath.Join(themesDir, "README.md")); !os.IsNotExist(err) {
		t.Error("top-level files should not be extracted")
	}
}

func TestInstallZip(t *testing.T) {
	tmp := t.TempDir()
	archive := writeZip(t, tmp, map[string]string{
		"mono/gui/canvas/colors.py": "# mono\n",
	})

	themes, err := Install(archive, filepath.Join(tmp, "themes"), nil)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if want := []string{"mono"}; !reflect.DeepEqual(themes, want) {
		t.Errorf("themes = %v, want %v", themes, want)
	}
}

func TestInstallRejectsTraversal(t *testing.T) {
	tmp := t.TempDir()
	archive := writeTarGz(t, tmp, map[string]string{
		"../escape/colors.py": "evil\n",
	})

	themesDir := filepath.Join(tmp, "themes")
	if _, err := Install(archive, themesDir, nil); err == nil {
		t.Fatal("expected traversal entry to be rejected")
	}
	if _, err := os.Stat(filepath.Join(tmp, "escape")); !os.IsNotExist(err) {
		t.Error("nothing may be written outside the themes directory")
	}
}

func TestInstallRejectsAbsolutePath(t *testing.T) {
	tmp := t.TempDir()
	archive := writeTarGz(t, tmp, map[string]string{
		"/etc/passwd": "evil\n",
	})
	if _, err := Install(archive, filepath.Join(tmp, "themes"), nil); err == nil {
		t.Fatal("expected absolute entry to be rejected")
	}
}

func TestInstallUnsupportedFormat(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pack.rar")
	if err := os.WriteFile(path, []byte("not an archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Install(path, filepath.Join(tmp, "themes"), nil); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestInstallEmptyArchive(t *testing.T) {
	tmp := t.TempDir()
	archive := writeTarGz(t, tmp, map[string]string{
		"README.md": "only a readme\n",
	})
	if _, err := Install(archive, filepath.Join(tmp, "themes"), nil); err == nil {
		t.Fatal("expected error for archive with no theme directories")
	}
}
