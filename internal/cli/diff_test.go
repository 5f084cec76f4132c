package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestUnifiedDiffIdentical(t *testing.T) {
	lines := []string{"a", "b", "c"}
	if got := unifiedDiff("x", "y", lines, lines); got != nil {
		t.Errorf("identical inputs should produce no diff, got %v", got)
	}
}

func TestUnifiedDiffChange(t *testing.T) {
	a := []string{"COLOR = '#000000'", "BORDER = '#111111'"}
	b := []string{"COLOR = '#FF2A6D'", "BORDER = '#111111'"}

	got := unifiedDiff("live", "theme", a, b)
	want := []string{
		"--- live",
		"+++ theme",
		"-COLOR = '#000000'",
		"+COLOR = '#FF2A6D'",
		" BORDER = '#111111'",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("diff = %q, want %q", got, want)
	}
}

func TestUnifiedDiffAdditionAndRemoval(t *testing.T) {
	a := []string{"one", "two", "three"}
	b := []string{"one", "three", "four"}

	got := unifiedDiff("a", "b", a, b)
	joined := strings.Join(got, "\n")
	if !strings.Contains(joined, "-two") {
		t.Errorf("missing removal in:\n%s", joined)
	}
	if !strings.Contains(joined, "+four") {
		t.Errorf("missing addition in:\n%s", joined)
	}
	if !strings.Contains(joined, " one") || !strings.Contains(joined, " three") {
		t.Errorf("common lines lost in:\n%s", joined)
	}
}

func TestSplitLines(t *testing.T) {
	if got := splitLines(""); got != nil {
		t.Errorf("empty input should split to nil, got %v", got)
	}
	if got := splitLines("a\nb\n"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("splitLines = %v", got)
	}
	if got := splitLines("no newline"); !reflect.DeepEqual(got, []string{"no newline"}) {
		t.Errorf("splitLines = %v", got)
	}
}
