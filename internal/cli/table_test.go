package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	tbl := NewTable([]string{"THEME", "DESCRIPTION"})
	tbl.AddRow([]string{"outrun", "80s synthwave"})
	tbl.AddRow([]string{"arctic", "Ice blue and white"})

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "THEME") {
		t.Errorf("header missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "-----") {
		t.Errorf("separator missing: %q", lines[1])
	}
	if !strings.Contains(lines[2], "outrun") || !strings.Contains(lines[2], "80s synthwave") {
		t.Errorf("row content wrong: %q", lines[2])
	}
}

func TestTableShortRowPadded(t *testing.T) {
	tbl := NewTable([]string{"A", "B", "C"})
	tbl.AddRow([]string{"only"})
	out := tbl.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("short row dropped:\n%s", out)
	}
}

func TestTableWrapsLongColumn(t *testing.T) {
	tbl := NewTable([]string{"THEME", "DESCRIPTION"})
	tbl.SetColumnMaxWidth(1, 10)
	tbl.AddRow([]string{"outrun", "pink purple blue on deep purple"})

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, then one line per wrapped fragment.
	if len(lines) <= 3 {
		t.Fatalf("description was not wrapped:\n%s", out)
	}
	if !strings.Contains(out, "pink") || !strings.Contains(out, "deep") {
		t.Errorf("wrapped content missing:\n%s", out)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  int // line count
	}{
		{"short", 20, 1},
		{"two words here", 6, 3},
		{"averyverylongsingleword", 8, 3},
		{"", 10, 1},
	}
	for _, tt := range tests {
		got := wrapText(tt.text, tt.width)
		if len(got) != tt.want {
			t.Errorf("wrapText(%q, %d) = %d lines %v, want %d", tt.text, tt.width, len(got), got, tt.want)
		}
	}
}
