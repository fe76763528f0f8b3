package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("16"),
	core.ColorRed:     lipgloss.Color("196"),
	core.ColorGreen:   lipgloss.Color("34"),
	core.ColorYellow:  lipgloss.Color("226"),
	core.ColorBlue:    lipgloss.Color("21"),
	core.ColorMagenta: lipgloss.Color("201"),
	core.ColorCyan:    lipgloss.Color("51"),
	core.ColorWhite:   lipgloss.Color("231"),
	core.ColorOrange:  lipgloss.Color("208"),
	core.ColorPink:    lipgloss.Color("218"),
	core.ColorGray:    lipgloss.Color("245"),
	core.ColorField:   lipgloss.Color("71"),
}

// cellStyle is the part of a cell that affects its styling.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

// styleCache holds lipgloss styles built so far.
var styleCache = map[cellStyle]lipgloss.Style{}

func styleFor(k cellStyle) lipgloss.Style {
	if s, ok := styleCache[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Bold(k.bold)
	if c, ok := palette[k.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[k.bg]; ok {
		s = s.Background(c)
	}
	styleCache[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, n := 0, s.Height(); y < n; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{cell.Fg, cell.Bg, cell.Bold}

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{cell.Fg, cell.Bg, cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
