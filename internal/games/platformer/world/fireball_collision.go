package world

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"

// updateFireballs moves every visible fireball and frees slots that left
// the screen.
func (w *World) updateFireballs(k float64) {
	screen := physics.Rect{W: w.params.ScreenW, H: w.params.ScreenH}
	for i := range w.Player.Fireballs {
		ball := &w.Player.Fireballs[i]
		if !ball.Visible {
			continue
		}
		if !ball.Rect.Intersects(screen) {
			ball.Visible = false
			w.emit(Event{Kind: EventFireballExpired, Index: i})
			continue
		}

		w.moveFireball(ball, physics.AxisX, ball.Velocity.X*k)
		ball.Velocity.Y = min(ball.Velocity.Y+w.params.FireballGravity*k, w.params.FireballSpeed)
		w.moveFireball(ball, physics.AxisY, ball.Velocity.Y*k)
	}
}

// moveFireball dispatches one axis of fireball movement. Any hit reflects
// that axis' velocity.
func (w *World) moveFireball(ball *Fireball, axis physics.Axis, d float64) {
	r, hit := w.sweepTerrain(ball.Rect, axis, d, w.params.halfStep())
	ball.Rect = r
	if !hit.hit {
		return
	}
	if axis == physics.AxisX {
		ball.Velocity.X = -ball.Velocity.X
	} else {
		ball.Velocity.Y = -ball.Velocity.Y
	}
}
