package physics

import "math"

// Axis identifies which axis a swept collision happened on.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// Detect sweeps mover by vel against a stationary target and reports the axis
// of the earliest overlap.
//
// X is walked to its goal in increments of step before Y is considered at
// all; the Y walk starts from the X-updated position. Corner approaches
// therefore resolve as X. The last increment of each walk is clamped to the
// goal so the loop ends on exact equality.
//
// Returns AxisNone for step < 1, empty rects, or non-finite input.
func Detect(mover Rect, vel Velocity, target Rect, step int) Axis {
	if step < 1 || mover.Empty() || target.Empty() {
		return AxisNone
	}
	if !finite(vel.X) || !finite(vel.Y) || !finite(mover.X) || !finite(mover.Y) {
		return AxisNone
	}
	s := float64(step)

	goal := mover.X + vel.X
	for mover.X != goal {
		mover.X = advance(mover.X, goal, s)
		if mover.Intersects(target) {
			return AxisX
		}
	}

	goal = mover.Y + vel.Y
	for mover.Y != goal {
		mover.Y = advance(mover.Y, goal, s)
		if mover.Intersects(target) {
			return AxisY
		}
	}

	return AxisNone
}

// advance moves pos one step toward goal without overshooting it.
func advance(pos, goal, step float64) float64 {
	var next float64
	if goal > pos {
		next = math.Min(pos+step, goal)
	} else {
		next = math.Max(pos-step, goal)
	}
	// At large magnitudes pos+step can round back to pos.
	if next == pos {
		return goal
	}
	return next
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
