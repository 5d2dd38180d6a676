package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.SetWithColor(1, 0, '█', core.ColorBrightYellow)
	s.SetWithColor(2, 0, '▓', core.ColorBrown)
	s.DrawText(0, 2, "abc")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "█") || !strings.Contains(lines[0], "▓") {
		t.Errorf("first line lost its runes: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "abc") {
		t.Errorf("text row = %q", lines[2])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSlate; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
