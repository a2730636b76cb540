package fish

import (
	"sort"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

// Layout positions in world units.
const (
	TitleX = 100
	TitleY = 100
	StartX = 100
	StartY = 400
	ExitX  = 500
	ExitY  = 400
	ScoreX = 1300
	ScoreY = 75
)

// Z-order layers; lower draws first.
const (
	ZBackground = -100
	ZText       = 0
	ZFish       = 1
)

// DrawKind says how a Drawable is rendered.
type DrawKind int

const (
	DrawImage DrawKind = iota
	DrawText
)

// Drawable is a single item a platform must render this frame.
type Drawable struct {
	Kind    DrawKind
	Z       int
	X, Y    float64
	W, H    float64 // Images only; zero means the full viewport
	Texture string  // Images only
	Flipped bool    // Images only
	Text    string  // Text only
	Color   core.Color
}

// Snapshot captures everything needed to draw one frame.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	Selection Option
	Fish      Sprite
	Drawables []Drawable // Sorted by Z, stable
}

// Snapshot returns the current frame description.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		State:     g.session.State,
		Score:     g.session.Score,
		Selection: g.session.Selection,
		Fish:      g.sprite,
	}

	d := []Drawable{{
		Kind:    DrawImage,
		Z:       ZBackground,
		Texture: g.opts.Background,
		W:       g.opts.Viewport.W,
		H:       g.opts.Viewport.H,
	}}

	if g.session.State == StateMenu {
		items := MenuItems(g.session.Selection)
		d = append(d,
			Drawable{Kind: DrawText, Z: ZText, X: TitleX, Y: TitleY, Text: Title, Color: core.ColorHotPink},
			menuText(items[0], StartX, StartY),
			menuText(items[1], ExitX, ExitY),
		)
	} else {
		d = append(d,
			Drawable{Kind: DrawText, Z: ZText, X: ScoreX, Y: ScoreY, Text: ScoreLabel(g.session.Score), Color: core.ColorWhite},
			Drawable{
				Kind:    DrawImage,
				Z:       ZFish,
				X:       g.sprite.Pos.X,
				Y:       g.sprite.Pos.Y,
				W:       g.sprite.Size.W,
				H:       g.sprite.Size.H,
				Texture: g.sprite.Texture,
				Flipped: g.sprite.Orientation == OrientFlipped,
			},
		)
	}

	sort.SliceStable(d, func(i, j int) bool { return d[i].Z < d[j].Z })
	snap.Drawables = d
	return snap
}

func menuText(item MenuItem, x, y float64) Drawable {
	c := core.ColorLightSlateGray
	if item.Highlighted {
		c = core.ColorHotPink
	}
	return Drawable{Kind: DrawText, Z: ZText, X: x, Y: y, Text: item.Label, Color: c}
}
