package theme

import "testing"

const outrunColors = `
from gi.repository import Gtk, Gdk, cairo

HIGHLIGHT_COLOR = get_color('#FFD700')
BORDER_COLOR = get_color('#6A2080')
FONT_COLOR = get_color('#FF6EC7')
FLOWGRAPH_BACKGROUND_COLOR = get_color('#1A0A2E')
FLOWGRAPH_EDGE_COLOR = COMMENT_BACKGROUND_COLOR

AMBIENT_PARTICLE_TYPE = 'confetti'
AMBIENT_PARTICLE_COLOR = '#FF00FF'

DARK_THEME_STYLES = b"""
    #dtype_complex { background-color: #8844CC; }
    #dtype_float   { background-color: #FF6EC7; }
    #dtype_int     { background-color: #00BFFF; }
"""
LIGHT_THEME_STYLES = b"""
    #dtype_complex { background-color: #111111; }
"""
`

func TestParsePalette(t *testing.T) {
	p := ParsePalette([]byte(outrunColors))

	if got := p.Color("FLOWGRAPH_BACKGROUND_COLOR", "#000000"); got != "#1A0A2E" {
		t.Errorf("background = %s, want #1A0A2E", got)
	}
	if got := p.Color("HIGHLIGHT_COLOR", "#000000"); got != "#FFD700" {
		t.Errorf("highlight = %s, want #FFD700", got)
	}

	// Aliased assignment (no get_color call) falls back.
	if got := p.Color("FLOWGRAPH_EDGE_COLOR", "#FALLBK"); got != "#FALLBK" {
		t.Errorf("aliased var should not parse, got %s", got)
	}

	if got := p.PortColor("complex", "#888888"); got != "#8844CC" {
		t.Errorf("complex port = %s, want #8844CC (dark styles, not light)", got)
	}
	if got := p.PortColor("int", "#888888"); got != "#00BFFF" {
		t.Errorf("int port = %s, want #00BFFF", got)
	}
	if got := p.PortColor("string", "#888888"); got != "#888888" {
		t.Errorf("undefined port type should fall back, got %s", got)
	}

	if p.AmbientType != "confetti" {
		t.Errorf("AmbientType = %q, want confetti", p.AmbientType)
	}
	if p.AmbientColor != "#FF00FF" {
		t.Errorf("AmbientColor = %q, want #FF00FF", p.AmbientColor)
	}
}

func TestParsePaletteEmpty(t *testing.T) {
	p := ParsePalette([]byte("# nothing here\n"))
	if len(p.Colors) != 0 || len(p.PortTypes) != 0 {
		t.Errorf("empty input should parse to empty palette, got %+v", p)
	}
	if got := p.Color("FONT_COLOR", "#DDDDDD"); got != "#DDDDDD" {
		t.Errorf("fallback not honoured: %s", got)
	}
}
