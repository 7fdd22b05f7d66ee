package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-boulder/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(6, 2)
	scr.DrawText(0, 0, "ab")
	scr.FillRect(2, 0, 2, 1, "#ff0000")
	scr.DrawTextColor(0, 1, "cd", core.ColorYellow)

	out := RenderScreen(scr)
	lines := strings.Split(ansi.Strip(out), "\n")

	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "ab    " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "cd    " {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestRenderScreenPlainWithoutColors(t *testing.T) {
	scr := core.NewScreen(3, 1)
	scr.DrawText(0, 0, "abc")

	if got := RenderScreen(scr); got != "abc" {
		t.Errorf("RenderScreen = %q, want plain text", got)
	}
}

func TestStyleCacheReuse(t *testing.T) {
	c := styleCache{}
	k := cellStyle{fg: core.ColorRed, bg: "#000000"}

	c.get(k)
	c.get(k)
	c.get(cellStyle{})

	if len(c) != 2 {
		t.Errorf("cache size = %d, want 2", len(c))
	}
}
