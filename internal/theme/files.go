package theme

import "fmt"

// Mode selects how much of the host's rendering stack a theme replaces.
type Mode string

const (
	// ModeFull replaces every rendering module the theme ships.
	ModeFull Mode = "full"

	// ModeColors replaces only the palette and block rendering modules.
	// Includes block.py because text/disabled readability tuning lives there.
	ModeColors Mode = "colors"
)

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModeColors:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected %q or %q)", s, ModeFull, ModeColors)
	}
}

// themeFiles maps theme-relative paths to host-relative paths for a full
// install. The two sides currently coincide but are kept separate so a theme
// layout change doesn't ripple into the host map.
var themeFiles = map[string]string{
	"gui/canvas/colors.py":     "gui/canvas/colors.py",
	"gui/canvas/block.py":      "gui/canvas/block.py",
	"gui/canvas/connection.py": "gui/canvas/connection.py",
	"gui/canvas/port.py":       "gui/canvas/port.py",
	"gui/ParamWidgets.py":      "gui/ParamWidgets.py",
	"main.py":                  "main.py",
}

// colorsOnlyFiles is the subset installed in colors mode.
var colorsOnlyFiles = map[string]string{
	"gui/canvas/colors.py": "gui/canvas/colors.py",
	"gui/canvas/block.py":  "gui/canvas/block.py",
	"main.py":              "main.py",
}

// sharedFiles are patched host modules installed with every theme
// (background image support, effects, sound cues). They live in the shared
// directory next to the themes, not inside any one theme.
var sharedFiles = map[string]string{
	"gui/DrawingArea.py": "gui/DrawingArea.py",
	"gui/effects.py":     "gui/effects.py",
	"gui/sounds.py":      "gui/sounds.py",
}

// ConfFile is the theme-relative path of an optional host config replacement,
// installed in full mode only.
const ConfFile = "config/grc.conf"

// Files returns the theme-relative -> host-relative file map for the mode.
func (m Mode) Files() map[string]string {
	if m == ModeColors {
		return colorsOnlyFiles
	}
	return themeFiles
}

// SharedFiles returns the shared-relative -> host-relative map of patch files.
func SharedFiles() map[string]string {
	return sharedFiles
}

// TrackedPaths returns every host-relative path this tool may overwrite,
// regardless of mode. Used for backups and restore.
func TrackedPaths() []string {
	paths := make([]string, 0, len(themeFiles)+len(sharedFiles))
	for _, hostRel := range themeFiles {
		paths = append(paths, hostRel)
	}
	for _, hostRel := range sharedFiles {
		paths = append(paths, hostRel)
	}
	return paths
}
