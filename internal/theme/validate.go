package theme

import (
	"fmt"
	"regexp"
	"sort"
)

// RequiredColorVars are the color constants that must exist in colors.py for
// the host application to start. A theme missing any of these will render
// the host unusable until restore.
var RequiredColorVars = []string{
	"HIGHLIGHT_COLOR", "BORDER_COLOR", "BORDER_COLOR_DISABLED", "FONT_COLOR",
	"MISSING_BLOCK_BACKGROUND_COLOR", "MISSING_BLOCK_BORDER_COLOR",
	"BLOCK_DEPRECATED_BACKGROUND_COLOR", "BLOCK_DEPRECATED_BORDER_COLOR",
	"FLOWGRAPH_BACKGROUND_COLOR", "COMMENT_BACKGROUND_COLOR",
	"FLOWGRAPH_EDGE_COLOR", "BLOCK_ENABLED_COLOR", "BLOCK_DISABLED_COLOR",
	"BLOCK_BYPASSED_COLOR", "CONNECTION_ENABLED_COLOR",
	"CONNECTION_DISABLED_COLOR", "CONNECTION_ERROR_COLOR",
	"DEFAULT_DOMAIN_COLOR", "PORT_TYPE_TO_COLOR",
	"DARK_THEME_STYLES", "LIGHT_THEME_STYLES",
}

var importRe = regexp.MustCompile(`(?m)^(?:from|import)\s+\S+`)

// MissingColorVars returns the required color variables that content does
// not assign at the start of a line.
func MissingColorVars(content []byte) []string {
	var missing []string
	for _, name := range RequiredColorVars {
		re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(name) + `\s*=`)
		if !re.Match(content) {
			missing = append(missing, name)
		}
	}
	return missing
}

// ValidateReplacement checks a theme file against the live host file it
// would overwrite. Issues are advisory: the original proceeds on warnings,
// and so does the installer.
func ValidateReplacement(rel string, themeContent, liveContent []byte) []string {
	var issues []string

	// A theme must not remove imports the original module has; the host
	// fails to start when a module it loads drops a dependency.
	liveImports := make(map[string]bool)
	for _, imp := range importRe.FindAllString(string(liveContent), -1) {
		liveImports[imp] = true
	}
	for _, imp := range importRe.FindAllString(string(themeContent), -1) {
		delete(liveImports, imp)
	}
	removed := make([]string, 0, len(liveImports))
	for imp := range liveImports {
		removed = append(removed, imp)
	}
	sort.Strings(removed)
	for _, imp := range removed {
		issues = append(issues, fmt.Sprintf("removes import: %s", imp))
	}

	if rel == "gui/canvas/colors.py" {
		for _, name := range MissingColorVars(themeContent) {
			issues = append(issues, fmt.Sprintf("missing required variable: %s", name))
		}
	}

	return issues
}
