// Package core provides fundamental types and utilities for the fish clicker.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Vec is a point in world space.
type Vec struct {
	X, Y float64
}

// Size is the width and height of a sprite in world units.
type Size struct {
	W, H float64
}

// Viewport is the fixed world area the game is played in.
// It is established at startup and never changes for a session.
type Viewport struct {
	W, H float64
}

// NewViewport creates a viewport with the given dimensions.
func NewViewport(w, h float64) Viewport {
	return Viewport{W: w, H: h}
}

// Fits reports whether a sprite of the given size fits inside the viewport.
func (v Viewport) Fits(s Size) bool {
	return s.W >= 0 && s.H >= 0 && s.W <= v.W && s.H <= v.H
}

// MaxX returns the largest x a sprite of the given size may occupy
// while staying fully on screen.
func (v Viewport) MaxX(s Size) float64 {
	return v.W - s.W
}

// MaxY returns the largest y a sprite of the given size may occupy
// while staying fully on screen.
func (v Viewport) MaxY(s Size) float64 {
	return v.H - s.H
}

// Rect represents an axis-aligned bounding box in world space.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Corners returns the four vertices of the box in the order
// top-left, top-right, bottom-right, bottom-left.
func (r Rect) Corners() [4]Vec {
	return [4]Vec{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}

// ContainsStrict returns true if (x, y) lies strictly inside the rectangle.
// Points on any edge are outside.
func (r Rect) ContainsStrict(x, y float64) bool {
	return r.X < x && x < r.Right() && r.Y < y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
