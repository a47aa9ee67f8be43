// Package physics implements the swept collision detector and the flush
// resolver shared by every moving entity. It is pure: no world state, no
// allocation, no errors. Degenerate input yields "no collision".
package physics

import "math"

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rect has no area. Empty rects never collide.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two rects overlap with positive area.
// Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Overlap returns the overlapping area of the two rects.
func (r Rect) Overlap(other Rect) float64 {
	if !r.Intersects(other) {
		return 0
	}
	w := math.Min(r.Right(), other.Right()) - math.Max(r.X, other.X)
	h := math.Min(r.Bottom(), other.Bottom()) - math.Max(r.Y, other.Y)
	return w * h
}

// Offset returns the rect moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Velocity is a displacement in pixels per nominal frame at the target tick rate.
type Velocity struct {
	X, Y float64
}

// Scale returns v multiplied by k. Used to turn per-frame velocity into the
// displacement for one tick of arbitrary length.
func (v Velocity) Scale(k float64) Velocity {
	return Velocity{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
