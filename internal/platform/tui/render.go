package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fish-clicker/internal/core"
	"github.com/vovakirdan/fish-clicker/internal/fish"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:        lipgloss.NewStyle(),
	core.ColorBlack:          lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorWhite:          lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorHotPink:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	core.ColorLightSlateGray: lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
	core.ColorOrange:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBlue:           lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
}

// Fish glyphs, head last.
const (
	fishRight = "><>"
	fishLeft  = "<><"
)

// DrawSnapshot paints a frame onto the screen in ascending Z order.
// The screen is cleared first.
func DrawSnapshot(s *core.Screen, snap fish.Snapshot, p Projection) {
	s.Clear()
	for _, d := range snap.Drawables {
		switch d.Kind {
		case fish.DrawImage:
			if d.Z == fish.ZBackground {
				drawWater(s)
				continue
			}
			drawFish(s, d, p)
		case fish.DrawText:
			drawText(s, d, p)
		}
	}
}

// drawWater stands in for the background image with sparse ripples.
func drawWater(s *core.Screen) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if (x*7+y*13)%23 == 0 {
				s.SetColored(x, y, '~', core.ColorBlue)
			}
		}
	}
}

func drawFish(s *core.Screen, d fish.Drawable, p Projection) {
	glyph := fishRight
	if d.Flipped {
		glyph = fishLeft
	}
	runes := []rune(glyph)

	cells := p.Cells(core.NewRect(d.X, d.Y, d.W, d.H))
	left := cells[0].Col
	for _, c := range cells {
		left = core.Min(left, c.Col)
	}
	for _, c := range cells {
		s.SetColored(c.Col, c.Row, runes[(c.Col-left)%len(runes)], core.ColorOrange)
	}
}

// drawText places text at the cell holding its world anchor, shifted left
// if it would run off the right edge.
func drawText(s *core.Screen, d fish.Drawable, p Projection) {
	col, row := p.ToCell(d.X, d.Y)
	if n := utf8.RuneCountInString(d.Text); col+n > s.Width() {
		col = core.Max(s.Width()-n, 0)
	}
	s.DrawTextColored(col, row, d.Text, d.Color)
}

// PlainText returns the screen without colors, trailing blanks trimmed
// from every row.
func PlainText(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.Join(rows, "\n")
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
