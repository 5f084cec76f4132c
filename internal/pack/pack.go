// Package pack installs theme pack archives into the themes directory.
// A pack is an archive whose top-level directories are themes laid out the
// same way as the shipped ones.
package pack

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ulikunitz/xz"

	"github.com/pimpmygrc/pimpmygrc/internal/security"
)

// maxPackBytes caps total decompressed output to block decompression bombs.
const maxPackBytes = 100 * 1024 * 1024

// ErrUnsupportedFormat is returned for archives with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported archive format (expected .tar.gz, .tgz, .tar.xz, .tar.bz2 or .zip)")

// Install extracts the archive at archivePath into themesDir and returns
// the sorted names of the top-level theme directories it created.
func Install(archivePath, themesDir string, log hclog.Logger) ([]string, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	log = log.Named("pack")

	data, err := os.ReadFile(archivePath) // #nosec G304 - user-chosen archive
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create themes directory: %w", err)
	}

	name := strings.ToLower(filepath.Base(archivePath))
	var themes []string
	switch {
	case strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz"):
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		themes, err = extractTar(gzr, themesDir, log)
		if err != nil {
			return nil, err
		}
	case strings.HasSuffix(name, ".tar.xz") || strings.HasSuffix(name, ".txz"):
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		themes, err = extractTar(xzr, themesDir, log)
		if err != nil {
			return nil, err
		}
	case strings.HasSuffix(name, ".tar.bz2") || strings.HasSuffix(name, ".tbz2"):
		var err error
		themes, err = extractTar(bzip2.NewReader(bytes.NewReader(data)), themesDir, log)
		if err != nil {
			return nil, err
		}
	case strings.HasSuffix(name, ".zip"):
		var err error
		themes, err = extractZip(data, themesDir, log)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	if len(themes) == 0 {
		return nil, fmt.Errorf("archive contains no theme directories")
	}
	log.Info("installed theme pack", "archive", filepath.Base(archivePath), "themes", themes)
	return themes, nil
}

// extractTar writes every regular file in the tar stream under destDir.
func extractTar(r io.Reader, destDir string, log hclog.Logger) ([]string, error) {
	tr := tar.NewReader(security.NewLimitedReader(r, maxPackBytes))
	themes := make(map[string]bool)

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			continue
		case tar.TypeReg:
		default:
			// Symlinks and special files have no business in a theme pack.
			log.Warn("skipping non-regular archive entry", "name", header.Name)
			continue
		}

		if err := writeEntry(destDir, header.Name, tr, themes, log); err != nil {
			return nil, err
		}
	}

	return sortedNames(themes), nil
}

// extractZip writes every file in the zip archive under destDir.
func extractZip(data []byte, destDir string, log hclog.Logger) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zip reader: %w", err)
	}

	themes := make(map[string]bool)
	remaining := int64(maxPackBytes)

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
		}
		limited := security.NewLimitedReader(rc, remaining)
		err = writeEntry(destDir, f.Name, limited, themes, log)
		rc.Close()
		if err != nil {
			return nil, err
		}
		remaining = limited.Remaining
	}

	return sortedNames(themes), nil
}

// writeEntry validates an archive entry path and writes its content under
// destDir, recording the top-level theme directory it belongs to.
func writeEntry(destDir, entryName string, r io.Reader, themes map[string]bool, log hclog.Logger) error {
	clean := filepath.Clean(filepath.FromSlash(entryName))
	if err := security.ValidateArchivePath(clean, destDir); err != nil {
		return fmt.Errorf("rejecting archive entry %q: %w", entryName, err)
	}

	parts := strings.Split(clean, string(filepath.Separator))
	if len(parts) < 2 {
		// A bare top-level file is not part of any theme; ignore it
		// (packs commonly carry a README).
		log.Debug("skipping top-level file", "name", entryName)
		return nil
	}

	destPath := filepath.Join(destDir, clean)
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", clean, err)
	}

	out, err := os.Create(destPath) // #nosec G304 - path validated above
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	_, copyErr := io.Copy(out, r)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("failed to extract %s: %w", clean, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", destPath, closeErr)
	}

	themes[parts[0]] = true
	log.Debug("extracted", "path", clean)
	return nil
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
