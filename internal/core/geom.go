// Package core provides fundamental types shared by the game and the platform
// layer. It has no external dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromBounds builds a rect from its edges. Inverted bounds give an empty rect.
func RectFromBounds(left, top, right, bottom int) Rect {
	return Rect{X: left, Y: top, W: Max(right-left, 0), H: Max(bottom-top, 0)}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clip returns the part of r that lies inside a w x h screen.
func (r Rect) Clip(w, h int) Rect {
	return RectFromBounds(
		Clamp(r.X, 0, w),
		Clamp(r.Y, 0, h),
		Clamp(r.Right(), 0, w),
		Clamp(r.Bottom(), 0, h),
	)
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
