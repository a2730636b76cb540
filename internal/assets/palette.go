package assets

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

// Palette maps shared game colors to RGBA values for window platforms.
type Palette map[core.Color]color.RGBA

// DefaultPalette returns the palette with hotpink and lightslategray menu colors.
func DefaultPalette() Palette {
	return Palette{
		core.ColorDefault:        colornames.White,
		core.ColorBlack:          colornames.Black,
		core.ColorWhite:          colornames.White,
		core.ColorHotPink:        colornames.Hotpink,
		core.ColorLightSlateGray: colornames.Lightslategray,
		core.ColorOrange:         colornames.Orange,
		core.ColorBlue:           colornames.Blue,
	}
}

// NamedColor looks up a CSS color name such as "HotPink" or "hotpink".
func NamedColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("assets: unknown color %q", name)
	}
	return c, nil
}

// NewPalette returns the default palette with the menu colors replaced.
// Empty names keep the defaults.
func NewPalette(highlight, idle string) (Palette, error) {
	p := DefaultPalette()
	for _, entry := range []struct {
		slot core.Color
		name string
	}{
		{core.ColorHotPink, highlight},
		{core.ColorLightSlateGray, idle},
	} {
		if entry.name == "" {
			continue
		}
		c, err := NamedColor(entry.name)
		if err != nil {
			return nil, err
		}
		p[entry.slot] = c
	}
	return p, nil
}

// Color returns the RGBA value for c, falling back to white.
func (p Palette) Color(c core.Color) color.RGBA {
	if rgba, ok := p[c]; ok {
		return rgba
	}
	return colornames.White
}
