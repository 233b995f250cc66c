// Package core provides fundamental types shared by the persistence, session
// and presentation layers. It has no external dependencies so the data model
// stays testable without a terminal.
package core

import "fmt"

// Rect is an axis-aligned rectangle. It describes both sprite-sheet tiles
// (in pixels) and clickable screen regions (in terminal cells).
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(x=%d, y=%d, w=%d, h=%d)", r.X, r.Y, r.W, r.H)
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

// Wrap returns (val + delta) modulo n, always in [0, n).
// Returns 0 when n <= 0.
func Wrap(val, delta, n int) int {
	if n <= 0 {
		return 0
	}
	v := (val + delta) % n
	if v < 0 {
		v += n
	}
	return v
}
