package theme

import "regexp"

// Palette holds the colors parsed out of a theme's colors.py, used for
// preview rendering and nothing else. Parsing is best-effort: variables the
// regexes don't match simply fall back to preview defaults.
type Palette struct {
	// Colors maps variable name (e.g. FLOWGRAPH_BACKGROUND_COLOR) to a
	// "#RRGGBB" hex string.
	Colors map[string]string

	// PortTypes maps a port data type (e.g. "complex") to its hex color,
	// parsed from the DARK_THEME_STYLES CSS block.
	PortTypes map[string]string

	// AmbientType and AmbientColor are the theme's ambient particle hints.
	AmbientType  string
	AmbientColor string
}

var (
	colorAssignRe = regexp.MustCompile(`(?m)^(\w+)\s*=\s*(?:get_color|parse_color)\(['"]([#0-9A-Fa-f]+)['"]\)`)
	dtypeStyleRe  = regexp.MustCompile(`#dtype_(\w+)\s*\{\s*background-color:\s*(#[0-9A-Fa-f]{6})`)
	darkStylesRe  = regexp.MustCompile(`(?s)DARK_THEME_STYLES\s*=\s*b?["']{1,3}(.*?)["']{1,3}\s*\n[A-Z_]`)
	ambientRe     = regexp.MustCompile(`(?m)^(AMBIENT_PARTICLE_TYPE|AMBIENT_PARTICLE_COLOR)\s*=\s*['"]([^'"]+)['"]`)
)

// ParsePalette extracts hex color assignments, port type colors and ambient
// particle settings from colors.py content.
func ParsePalette(content []byte) *Palette {
	p := &Palette{
		Colors:    make(map[string]string),
		PortTypes: make(map[string]string),
	}

	text := string(content)

	for _, m := range colorAssignRe.FindAllStringSubmatch(text, -1) {
		p.Colors[m[1]] = m[2]
	}

	// Port type colors live in the DARK_THEME_STYLES CSS. Scope the dtype
	// scan to that block when it can be isolated, otherwise scan the whole
	// file (dark and light blocks ship the same colors in practice).
	css := text
	if m := darkStylesRe.FindStringSubmatch(text); m != nil {
		css = m[1]
	}
	for _, m := range dtypeStyleRe.FindAllStringSubmatch(css, -1) {
		if _, seen := p.PortTypes[m[1]]; !seen {
			p.PortTypes[m[1]] = m[2]
		}
	}

	for _, m := range ambientRe.FindAllStringSubmatch(text, -1) {
		switch m[1] {
		case "AMBIENT_PARTICLE_TYPE":
			p.AmbientType = m[2]
		case "AMBIENT_PARTICLE_COLOR":
			p.AmbientColor = m[2]
		}
	}

	return p
}

// Color returns the named color or fallback when the theme doesn't define it.
func (p *Palette) Color(name, fallback string) string {
	if hex, ok := p.Colors[name]; ok {
		return hex
	}
	return fallback
}

// PortColor returns the color for a port data type or fallback.
func (p *Palette) PortColor(dtype, fallback string) string {
	if hex, ok := p.PortTypes[dtype]; ok {
		return hex
	}
	return fallback
}
