package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"
)

// Snapshot contains the game state in primitive types for determinism checks.
// Positions and velocities are stored in thousandths of a pixel.
type Snapshot struct {
	Tick  uint64
	Score int
	Lives int
	Coins int
	State string

	// Player: hitbox (4), velocity (2), flags (bitmask), frame, timers in ms (3)
	PlayerData []int

	// Each block: rect (4), state, sprite, hit, broken, coin count,
	// item rect (4), item flags
	BlockData []int

	// Each fireball slot: rect (4), velocity (2), visible
	FireballData []int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

func appendRect(dst []int, r physics.Rect) []int {
	return append(dst, milli(r.X), milli(r.Y), milli(r.W), milli(r.H))
}

func flags(bits ...bool) int {
	v := 0
	for i, b := range bits {
		if b {
			v |= 1 << i
		}
	}
	return v
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tickCount,
		Score: g.score,
		Lives: g.lives,
		Coins: g.coins,
		State: g.state,
	}
	if g.world == nil {
		return snap
	}

	pl := &g.world.Player
	snap.PlayerData = appendRect(snap.PlayerData, pl.Hitbox)
	snap.PlayerData = append(snap.PlayerData,
		milli(pl.Velocity.X), milli(pl.Velocity.Y),
		flags(pl.Tall, pl.FireForm, pl.Invincible, pl.Transforming, pl.OnSurface, pl.Jumping,
			pl.HoldingJump, pl.GainingHeight, pl.Crouching, pl.FacingRight, pl.Walking, pl.Firing),
		pl.Frame,
		int(pl.TransformLeft.Milliseconds()),
		int(pl.StarLeft.Milliseconds()),
		int(pl.FiringLeft.Milliseconds()),
	)

	for _, b := range g.world.ActiveBlocks() {
		snap.BlockData = appendRect(snap.BlockData, b.Rect)
		snap.BlockData = append(snap.BlockData,
			int(b.State), int(b.Sprite), flags(b.Hit), flags(b.Broken), b.CoinCount)
		snap.BlockData = appendRect(snap.BlockData, b.Item.Rect)
		snap.BlockData = append(snap.BlockData, flags(b.Item.Free, b.Item.Visible, b.Item.Emerged))
	}

	for _, ball := range pl.Fireballs {
		snap.FireballData = appendRect(snap.FireballData, ball.Rect)
		snap.FireballData = append(snap.FireballData,
			milli(ball.Velocity.X), milli(ball.Velocity.Y), flags(ball.Visible))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins) //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PlayerData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.FireballData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
