package fish

import "github.com/vovakirdan/fish-clicker/internal/core"

// Direction is the horizontal heading of the fish.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

// Orientation is how the fish texture is drawn.
type Orientation int

const (
	OrientNormal  Orientation = iota // Texture as authored, facing right
	OrientFlipped                    // Mirrored on the X axis, facing left
)

// OrientationOf maps a heading to the texture orientation.
// This is the only place that relates the two.
func OrientationOf(d Direction) Orientation {
	if d == DirLeft {
		return OrientFlipped
	}
	return OrientNormal
}

// Sprite is the mobile fish.
type Sprite struct {
	Pos         core.Vec
	Dir         Direction
	Speed       float64
	Size        core.Size
	Texture     string
	Orientation Orientation
}

// NewSprite creates a sprite of the given size at the origin.
func NewSprite(size core.Size) Sprite {
	return Sprite{
		Size:        size,
		Dir:         DirRight,
		Speed:       1,
		Orientation: OrientNormal,
	}
}

// Bounds returns the sprite's world bounding box.
func (s Sprite) Bounds() core.Rect {
	return core.NewRect(s.Pos.X, s.Pos.Y, s.Size.W, s.Size.H)
}

// SetDirection changes the heading and keeps the orientation in sync.
func (s *Sprite) SetDirection(d Direction) {
	s.Dir = d
	s.Orientation = OrientationOf(d)
}

// Apply places the sprite according to a spawn plan.
func (s *Sprite) Apply(sp Spawn) {
	s.Pos = sp.Pos
	s.Speed = sp.Speed
	s.Texture = sp.Texture
	s.SetDirection(sp.Dir)
}
