package installer

import (
	"fmt"
	"strings"

	"github.com/pimpmygrc/pimpmygrc/internal/hostfs"
	"github.com/pimpmygrc/pimpmygrc/internal/theme"
)

// State records which theme is currently applied and in what mode. A nil
// State means stock: no theme applied.
//
// The on-disk format is the theme name on the first line followed by a
// "mode=" line, matching the state files written by earlier releases.
type State struct {
	Theme string
	Mode  theme.Mode
}

// LoadState reads the install state file. A missing file means stock and
// returns (nil, nil).
func LoadState(fs hostfs.Store, path string) (*State, error) {
	if !fs.Exists(path) {
		return nil, nil
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	state := &State{Mode: theme.ModeFull}
	for i, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		line = strings.TrimSpace(line)
		if i == 0 {
			state.Theme = line
			continue
		}
		if value, ok := strings.CutPrefix(line, "mode="); ok {
			if mode, err := theme.ParseMode(value); err == nil {
				state.Mode = mode
			}
		}
	}
	if state.Theme == "" {
		return nil, nil
	}
	return state, nil
}

// SaveState writes the install state file.
func SaveState(fs hostfs.Store, path string, state *State) error {
	content := fmt.Sprintf("%s\nmode=%s\n", state.Theme, state.Mode)
	if err := fs.WriteFile(path, []byte(content), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// ClearState removes the state file, returning the install state to stock.
// Clearing an already-clear state is not an error.
func ClearState(fs hostfs.Store, path string) error {
	if !fs.Exists(path) {
		return nil
	}
	return fs.Remove(path)
}
