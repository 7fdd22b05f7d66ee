package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boulder/internal/core"
)

// cellStyle identifies a foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache holds lipgloss styles built for each color pair seen so far.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(k cellStyle) lipgloss.Style {
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if k.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(string(k.fg)))
	}
	if k.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(string(k.bg)))
	}
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
