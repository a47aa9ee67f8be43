package physics

// Resolve moves mover so it sits flush against target on the given axis.
//
// On AxisX a mover whose left edge is left of the target's left edge ends
// with its right edge on target.X; otherwise its left edge lands on the
// target's right edge. AxisY is the same with top and bottom edges.
//
// Only geometry changes. Velocity and entity state belong to the caller.
// No-op for a nil mover, empty rects, or AxisNone.
func Resolve(mover *Rect, target Rect, axis Axis) {
	if mover == nil || mover.Empty() || target.Empty() {
		return
	}

	switch axis {
	case AxisX:
		if mover.X < target.X {
			mover.X = target.X - mover.W
		} else {
			mover.X = target.Right()
		}
	case AxisY:
		if mover.Y < target.Y {
			mover.Y = target.Y - mover.H
		} else {
			mover.Y = target.Bottom()
		}
	}
}
