package fish

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

// SpeedCurve maps score to fish speed: min(Base + score*PerPoint, Max).
type SpeedCurve struct {
	Base     float64
	PerPoint float64
	Max      float64
}

// DefaultSpeedCurve returns the standard curve: 1 + 1.5 per point, capped at 25.
func DefaultSpeedCurve() SpeedCurve {
	return SpeedCurve{Base: 1, PerPoint: 1.5, Max: 25}
}

// Speed returns the speed for the given score.
func (c SpeedCurve) Speed(score int) float64 {
	return math.Min(c.Base+float64(score)*c.PerPoint, c.Max)
}

// SpeedFor returns the default curve's speed for a score.
func SpeedFor(score int) float64 {
	return DefaultSpeedCurve().Speed(score)
}

// Spawn is a freshly planned fish placement.
type Spawn struct {
	Pos     core.Vec
	Dir     Direction
	Speed   float64
	Texture string
}

// Planner chooses where and how each fish appears.
type Planner struct {
	rng      *rand.Rand
	curve    SpeedCurve
	textures Selector
}

// NewPlanner creates a planner drawing from rng.
func NewPlanner(rng *rand.Rand, curve SpeedCurve, textures Selector) *Planner {
	return &Planner{
		rng:      rng,
		curve:    curve,
		textures: textures,
	}
}

// Spawn plans a new fish for the current score.
// The whole bounding box is guaranteed to be on screen.
// Panics if size does not fit in the viewport.
func (p *Planner) Spawn(score int, vp core.Viewport, size core.Size) Spawn {
	if !vp.Fits(size) {
		panic(fmt.Sprintf("fish: sprite %vx%v does not fit viewport %vx%v", size.W, size.H, vp.W, vp.H))
	}

	// Draw order: texture, x, y, direction.
	texture := p.textures.Select(p.rng)

	maxX := int(math.Floor(vp.MaxX(size)))
	maxY := int(math.Floor(vp.MaxY(size)))
	x := p.rng.Intn(maxX + 1)
	y := p.rng.Intn(maxY + 1)

	dir := DirLeft
	if p.rng.Intn(2) == 1 {
		dir = DirRight
	}

	return Spawn{
		Pos:     core.Vec{X: float64(x), Y: float64(y)},
		Dir:     dir,
		Speed:   p.curve.Speed(score),
		Texture: texture,
	}
}
