// Package background manages the user-level canvas background overrides:
// a PNG image and a color, stored under the host user directory. Both are
// independent of themes and survive apply/restore.
package background

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Paths locates the override files for one user.
type Paths struct {
	Image string
	Color string
}

// DefaultPaths returns the well-known override locations.
func DefaultPaths() Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Paths{
		Image: filepath.Join(home, ".gnuradio", "grc_background.png"),
		Color: filepath.Join(home, ".gnuradio", "grc_background_color"),
	}
}

// NormalizeHex validates a user-supplied color and returns the canonical
// "#RRGGBB" form (uppercase, leading hash).
func NormalizeHex(s string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return "", fmt.Errorf("invalid hex color %q: expected '#RRGGBB' or 'RRGGBB'", s)
	}
	for _, c := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return "", fmt.Errorf("invalid hex color %q: expected '#RRGGBB' or 'RRGGBB'", s)
		}
	}
	return "#" + strings.ToUpper(h), nil
}

// Color returns the current color override, or "" when none is set.
func (p Paths) ColorValue() string {
	data, err := os.ReadFile(p.Color) // #nosec G304 - well-known override path
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetColor writes the color override.
func (p Paths) SetColor(hex string) error {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.Color), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(p.Color, []byte(normalized+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write background color: %w", err)
	}
	return nil
}

// ClearColor removes the color override. Returns false when none was set.
func (p Paths) ClearColor() (bool, error) {
	if _, err := os.Stat(p.Color); err != nil {
		return false, nil
	}
	if err := os.Remove(p.Color); err != nil {
		return false, fmt.Errorf("failed to remove background color: %w", err)
	}
	return true, nil
}

// HasImage reports whether an image override is set.
func (p Paths) HasImage() bool {
	info, err := os.Stat(p.Image)
	return err == nil && info.Mode().IsRegular()
}

// ImageSize returns the dimensions of the current image override.
func (p Paths) ImageSize() (w, h int, err error) {
	f, err := os.Open(p.Image) // #nosec G304 - well-known override path
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("could not read background image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// SetImage copies a PNG into the override location.
func (p Paths) SetImage(src string) error {
	if !strings.EqualFold(filepath.Ext(src), ".png") {
		return fmt.Errorf("file must be a PNG image (got %s)", filepath.Ext(src))
	}
	data, err := os.ReadFile(src) // #nosec G304 - user-chosen image
	if err != nil {
		return fmt.Errorf("file not found: %s", src)
	}
	if err := os.MkdirAll(filepath.Dir(p.Image), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(p.Image, data, 0o644); err != nil {
		return fmt.Errorf("failed to write background image: %w", err)
	}
	return nil
}

// ClearImage removes the image override. Returns false when none was set.
func (p Paths) ClearImage() (bool, error) {
	if !p.HasImage() {
		return false, nil
	}
	if err := os.Remove(p.Image); err != nil {
		return false, fmt.Errorf("failed to remove background image: %w", err)
	}
	return true, nil
}
