package world

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"

// updateItems runs physics and dispatch for every moving item.
func (w *World) updateItems(k float64) {
	for i := range w.Blocks[:w.BlockCount] {
		it := &w.Blocks[i].Item
		if !it.Moving() {
			continue
		}
		if w.itemGone(it.Rect) {
			it.Visible = false
			w.emit(Event{Kind: EventItemLost, Index: i, Item: it.Type})
			continue
		}

		w.moveItem(it, physics.AxisX, it.Velocity.X*k)
		it.Velocity.Y = min(it.Velocity.Y+w.params.Gravity*k, w.params.MaxGravity)
		w.moveItem(it, physics.AxisY, it.Velocity.Y*k)

		if it.Rect.Y < 0 {
			it.Rect.Y = 0
			it.Velocity.Y = w.params.Gravity * 2
		}
	}
}

// itemGone reports whether an item has left the playfield: fully past the
// left or right edge while within the vertical bounds, or below the screen.
func (w *World) itemGone(r physics.Rect) bool {
	inside := r.Y >= 0 && r.Bottom() <= w.params.ScreenH
	off := r.Right() < 0 || r.X > w.params.ScreenW
	return (off && inside) || r.Y > w.params.ScreenH
}

// moveItem dispatches one axis of item movement.
func (w *World) moveItem(it *Item, axis physics.Axis, d float64) {
	r, hit := w.sweepTerrain(it.Rect, axis, d, w.params.halfStep())
	it.Rect = r
	if !hit.hit {
		return
	}

	if axis == physics.AxisX {
		it.Velocity.X = -it.Velocity.X
		return
	}

	switch {
	case hit.block >= 0 && w.Blocks[hit.block].Hit && w.Blocks[hit.block].Rect.Y > it.Rect.Y:
		it.Velocity.Y = -w.params.ItemJumpForce
	case hit.ground && it.Type == ItemStar:
		it.Velocity.Y = -w.params.ItemJumpForce
	default:
		it.Velocity.Y = 0
	}
}
