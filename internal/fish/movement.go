package fish

import "github.com/vovakirdan/fish-clicker/internal/core"

// Step advances the sprite by one tick.
// Crossing a horizontal bound reverses the heading; the position itself is
// not clamped, so the fish may overshoot by less than one step.
func Step(s *Sprite, vp core.Viewport) {
	switch s.Dir {
	case DirLeft:
		s.Pos.X -= s.Speed
		if s.Pos.X < 0 {
			s.SetDirection(s.Dir.Opposite())
		}
	case DirRight:
		s.Pos.X += s.Speed
		if s.Pos.X > vp.MaxX(s.Size) {
			s.SetDirection(s.Dir.Opposite())
		}
	}
}
