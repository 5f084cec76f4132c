// Package theme provides discovery and validation of theme directories.
// A theme is a named directory of replacement rendering modules for the
// host application, plus optional metadata.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrNotFound is returned when a requested theme does not exist.
var ErrNotFound = errors.New("theme not found")

// Theme is a named set of replacement rendering module contents.
// Immutable once shipped; the tool never edits theme files.
type Theme struct {
	Name        string
	Description string
	Dir         string
}

// Manifest is the optional theme.yaml metadata file shipped inside a theme.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
}

// builtinDescriptions covers the themes shipped before description files
// existed. A description.txt or theme.yaml in the theme directory wins.
var builtinDescriptions = map[string]string{
	"neon-hacker":    "Bright green neon on black — the original",
	"phosphor":       "Classic CRT phosphor green terminal",
	"outrun":         "80s synthwave — pink/purple/blue on deep purple",
	"cyberpunk-red":  "Red and gold on dark crimson",
	"arctic":         "Ice blue and white on dark navy",
	"solarized-dark": "Ethan Schoonover's Solarized palette",
	"military":       "Olive drab and amber on dark green",
}

// Store locates themes under a single themes directory.
type Store struct {
	dir string
}

// NewStore creates a theme store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the themes directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// List returns all themes sorted by name.
func (s *Store) List() ([]Theme, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read themes directory %s: %w", s.dir, err)
	}

	var themes []Theme
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		themes = append(themes, Theme{
			Name:        entry.Name(),
			Description: s.description(entry.Name()),
			Dir:         filepath.Join(s.dir, entry.Name()),
		})
	}

	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}

// Get resolves a theme by name. Returns ErrNotFound for unknown names.
func (s *Store) Get(name string) (*Theme, error) {
	dir := filepath.Join(s.dir, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return &Theme{
		Name:        name,
		Description: s.description(name),
		Dir:         dir,
	}, nil
}

// description resolves a theme's description: theme.yaml, then the first
// line of description.txt, then the built-in table.
func (s *Store) description(name string) string {
	manifestPath := filepath.Join(s.dir, name, "theme.yaml")
	if data, err := os.ReadFile(manifestPath); err == nil { // #nosec G304 - path under themes dir
		var m Manifest
		if err := yaml.Unmarshal(data, &m); err == nil && m.Description != "" {
			return m.Description
		}
	}

	descPath := filepath.Join(s.dir, name, "description.txt")
	if data, err := os.ReadFile(descPath); err == nil { // #nosec G304 - path under themes dir
		line, _, _ := strings.Cut(strings.TrimSpace(string(data)), "\n")
		if line != "" {
			return line
		}
	}

	if desc, ok := builtinDescriptions[name]; ok {
		return desc
	}
	return "Custom theme"
}

// FilePath returns the absolute path of a theme-relative file.
func (t *Theme) FilePath(rel string) string {
	return filepath.Join(t.Dir, rel)
}

// HasFile reports whether the theme ships the given theme-relative file.
func (t *Theme) HasFile(rel string) bool {
	info, err := os.Stat(t.FilePath(rel))
	return err == nil && info.Mode().IsRegular()
}

// ReadFile returns the content of a theme-relative file.
func (t *Theme) ReadFile(rel string) ([]byte, error) {
	data, err := os.ReadFile(t.FilePath(rel)) // #nosec G304 - path under theme dir
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", rel, err)
	}
	return data, nil
}
