package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/planet-defense/internal/core"
)

// palette holds the ANSI 256 code for every core.Color, indexed by value.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
}

var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, code := range palette {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

// Shared text styles for menus and overlays.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

func cellStyle(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string, one line per
// row. Cells sharing a color are emitted as a single styled run.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var out, run strings.Builder
	out.Grow(w*h*2 + h)

	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := core.ColorDefault
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(cellStyle(current).Render(run.String()))
				run.Reset()
			}
		}
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return out.String()
}
