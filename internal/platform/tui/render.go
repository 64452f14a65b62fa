package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type styleKey struct {
	fg, bg core.Color
	bold   bool
}

// styleCache holds one lipgloss style per color combination.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(k styleKey) lipgloss.Style {
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().Bold(k.bold)
	if hex := k.fg.Hex(); hex != "" {
		st = st.Foreground(lipgloss.Color(hex))
	}
	if hex := k.bg.Hex(); hex != "" {
		st = st.Background(lipgloss.Color(hex))
	}
	c[k] = st
	return st
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			cell := s.Get(x, y)
			start := styleKey{fg: cell.FG, bg: cell.BG, bold: cell.Bold}

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.Get(x, y)
				if (styleKey{fg: cell.FG, bg: cell.BG, bold: cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
