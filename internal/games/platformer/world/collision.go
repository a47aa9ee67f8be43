package world

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"

// contact describes the obstacle that limited a single-axis move.
type contact struct {
	hit    bool
	block  int  // Index of the block hit, -1 for a static object
	ground bool // Y contact on the target's top surface
}

// sweep moves one rect along one axis against many targets.
//
// Every target is tested from the pre-move position. A hit clips the
// displacement to the flush position, and later targets are tested with the
// clipped value, so the nearest obstacle wins whatever the array order.
type sweep struct {
	start physics.Rect
	axis  physics.Axis
	disp  float64
	last  contact
}

func newSweep(r physics.Rect, axis physics.Axis, disp float64) *sweep {
	return &sweep{start: r, axis: axis, disp: disp, last: contact{block: -1}}
}

func (s *sweep) velocity() physics.Velocity {
	if s.axis == physics.AxisX {
		return physics.Velocity{X: s.disp}
	}
	return physics.Velocity{Y: s.disp}
}

// test checks one target and clips the displacement on a hit.
//
// A mover that already overlaps the target, as when a bumped block rises
// into an item resting on it, is pushed out vertically on the Y pass and
// ignored on the X pass.
func (s *sweep) test(target physics.Rect, step int, block int) bool {
	if s.start.Intersects(target) {
		if s.axis != physics.AxisY {
			return false
		}
	} else if physics.Detect(s.start, s.velocity(), target, step) != s.axis {
		return false
	}

	resolved := s.start
	physics.Resolve(&resolved, target, s.axis)
	if s.axis == physics.AxisX {
		s.disp = resolved.X - s.start.X
	} else {
		s.disp = resolved.Y - s.start.Y
	}
	s.last = contact{
		hit:    true,
		block:  block,
		ground: s.axis == physics.AxisY && resolved.Y < target.Y,
	}
	return true
}

// result returns the moved rect.
func (s *sweep) result() physics.Rect {
	if s.axis == physics.AxisX {
		return s.start.Offset(s.disp, 0)
	}
	return s.start.Offset(0, s.disp)
}

// solid reports whether the block still collides.
func (b *Block) solid() bool {
	return !b.Broken
}

// sweepTerrain runs a sweep of r against every solid block and static object.
func (w *World) sweepTerrain(r physics.Rect, axis physics.Axis, disp float64, step int) (physics.Rect, contact) {
	s := newSweep(r, axis, disp)
	if disp == 0 && (axis == physics.AxisX || !w.embedded(r)) {
		return r, s.last
	}
	for i := range w.Blocks[:w.BlockCount] {
		if w.Blocks[i].solid() {
			s.test(w.Blocks[i].Rect, step, i)
		}
	}
	for _, obj := range w.Objects[:w.ObjectCount] {
		s.test(obj, step, -1)
	}
	return s.result(), s.last
}

// embedded reports whether r overlaps any solid terrain.
func (w *World) embedded(r physics.Rect) bool {
	for i := range w.Blocks[:w.BlockCount] {
		if w.Blocks[i].solid() && r.Intersects(w.Blocks[i].Rect) {
			return true
		}
	}
	for _, obj := range w.Objects[:w.ObjectCount] {
		if r.Intersects(obj) {
			return true
		}
	}
	return false
}
