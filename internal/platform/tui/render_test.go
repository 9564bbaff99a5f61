package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gravity-lanes/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("row 0 missing %q: %q", want, lines[0])
		}
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("row 1 missing xyz: %q", lines[1])
	}
}
