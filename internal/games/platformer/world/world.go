package world

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"
)

// Capacity errors returned by New. They are the only errors the world has.
var (
	ErrTooManyBlocks  = errors.New("world: too many blocks")
	ErrTooManyObjects = errors.New("world: too many objects")
)

// World exclusively owns the blocks, the static objects and the player.
type World struct {
	Blocks      [MaxBlocks]Block
	BlockCount  int
	Objects     [MaxObjects]physics.Rect
	ObjectCount int
	Player      Player

	params   Params
	startX   float64
	startY   float64
	fireHeld bool
	fell     bool
	tick     uint64
	events   []Event
}

// New builds a world from a level. Levels that exceed the fixed capacities
// are rejected.
func New(p Params, lvl Level) (*World, error) {
	if len(lvl.Blocks) > MaxBlocks {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyBlocks, len(lvl.Blocks), MaxBlocks)
	}
	if len(lvl.Objects) > MaxObjects {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyObjects, len(lvl.Objects), MaxObjects)
	}

	w := &World{
		params: p,
		startX: lvl.StartX,
		startY: lvl.StartY,
		events: make([]Event, 0, 16),
	}
	for i, t := range lvl.Blocks {
		w.Blocks[i] = newBlock(t, p)
	}
	w.BlockCount = len(lvl.Blocks)
	copy(w.Objects[:], lvl.Objects)
	w.ObjectCount = len(lvl.Objects)
	w.Player = newPlayer(lvl.StartX, lvl.StartY, p)
	return w, nil
}

// Params returns the parameters in effect.
func (w *World) Params() Params {
	return w.params
}

// SetParams swaps the tunables without touching entity state.
func (w *World) SetParams(p Params) {
	w.params = p
}

// Events returns what happened during the last tick. The slice is reused by
// the next call to Tick.
func (w *World) Events() []Event {
	return w.events
}

// Ticks returns the number of ticks simulated.
func (w *World) Ticks() uint64 {
	return w.tick
}

// ActiveBlocks returns the occupied part of the block array.
func (w *World) ActiveBlocks() []Block {
	return w.Blocks[:w.BlockCount]
}

// ActiveObjects returns the occupied part of the object array.
func (w *World) ActiveObjects() []physics.Rect {
	return w.Objects[:w.ObjectCount]
}

// Tick advances the simulation by dt.
//
// Every velocity change and displacement is scaled by k = dt * TargetFPS.
// A tick longer than one nominal frame runs as equal sub-steps of at most
// one frame, so the trajectory does not depend on the tick rate.
func (w *World) Tick(in Intent, dt time.Duration) {
	w.events = w.events[:0]
	w.tick++
	if dt < 0 {
		dt = 0
	}
	pl := &w.Player

	w.advanceTimers(dt)
	if pl.Transforming {
		pl.syncRender()
		return
	}

	k := dt.Seconds() * w.params.TargetFPS
	steps := int(math.Ceil(k - stepEpsilon))
	for i := range steps {
		w.step(in, k/float64(steps), i == 0)
		if pl.Transforming {
			break
		}
	}
	pl.syncRender()
}

// stepEpsilon absorbs float error in k so a whole frame stays one sub-step.
const stepEpsilon = 1e-6

// step runs one sub-step of k nominal frames, k <= 1. Fireballs are thrown
// only on the first sub-step of a tick.
func (w *World) step(in Intent, k float64, first bool) {
	pl := &w.Player

	// Intents
	pl.applyIntent(in, w.params, k)
	if first {
		if in.Fire && !w.fireHeld {
			if slot := pl.fire(w.params); slot >= 0 {
				w.emit(Event{Kind: EventFireballSpawned, Index: slot})
			}
		}
		w.fireHeld = in.Fire
	}

	// Player, one axis at a time
	w.movePlayer(physics.AxisX, pl.Velocity.X*k)
	pl.Velocity.Y = min(pl.Velocity.Y+w.params.Gravity*k, w.params.MaxGravity)
	w.movePlayer(physics.AxisY, pl.Velocity.Y*k)
	w.clampPlayer()

	w.updateBlocks(k)
	w.updateFireballs(k)
	w.updateItems(k)
	w.checkFall()
}

// advanceTimers counts down the timed player states.
func (w *World) advanceTimers(dt time.Duration) {
	pl := &w.Player
	if pl.Transforming {
		pl.TransformLeft -= dt
		if pl.TransformLeft <= 0 {
			pl.TransformLeft = 0
			pl.Transforming = false
			w.emit(Event{Kind: EventTransformDone, Index: -1})
		}
	}
	if pl.Invincible {
		pl.StarLeft -= dt
		if pl.StarLeft <= 0 {
			pl.StarLeft = 0
			pl.Invincible = false
			w.emit(Event{Kind: EventStarExpired, Index: -1})
		}
	}
	if pl.Firing {
		pl.FiringLeft -= dt
		if pl.FiringLeft <= 0 {
			pl.FiringLeft = 0
			pl.Firing = false
		}
	}
}

// clampPlayer keeps the hitbox inside the left and right walls and below
// the ceiling. The bottom is open.
func (w *World) clampPlayer() {
	pl := &w.Player
	if pl.Hitbox.X < 0 {
		pl.Hitbox.X = 0
		pl.Velocity.X = max(pl.Velocity.X, 0)
	}
	if right := w.params.ScreenW - pl.Hitbox.W; pl.Hitbox.X > right {
		pl.Hitbox.X = right
		pl.Velocity.X = min(pl.Velocity.X, 0)
	}
	if pl.Hitbox.Y < 0 {
		pl.Hitbox.Y = 0
		pl.Velocity.Y = max(pl.Velocity.Y, 0)
		pl.GainingHeight = false
	}
}

// updateBlocks advances bump cycles, item emergence, coins and shards.
func (w *World) updateBlocks(k float64) {
	center := w.Player.Hitbox.X + w.Player.Hitbox.W/2
	for i := range w.Blocks[:w.BlockCount] {
		b := &w.Blocks[i]
		b.updateBump(w.params, k)
		b.Item.emerge(b, w.params, center, k)
		b.updateCoins(w.params, k)
		b.updateShards(w.params, k)
	}
}

// checkFall reports a player whose hitbox dropped below the screen, once.
func (w *World) checkFall() {
	if w.fell || w.Player.Hitbox.Y <= w.params.ScreenH {
		return
	}
	w.fell = true
	w.emit(Event{Kind: EventPlayerFell, Index: -1})
}

// Fallen reports whether the player has fallen since the last respawn.
func (w *World) Fallen() bool {
	return w.fell
}

// RespawnPlayer puts a small player back at the level start. Blocks and
// items keep their state.
func (w *World) RespawnPlayer() {
	w.Player.reset(w.startX, w.startY, w.params)
	w.fireHeld = false
	w.fell = false
}
