package world

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"
)

// Player is the single controllable character.
//
// Hitbox is the physics truth. Rect is the draw rect, derived from the
// hitbox by syncGeometry and syncRender and never written anywhere else.
type Player struct {
	Rect     physics.Rect
	Hitbox   physics.Rect
	Velocity physics.Velocity

	Tall          bool
	FireForm      bool
	Invincible    bool
	Transforming  bool
	OnSurface     bool
	Jumping       bool
	HoldingJump   bool
	GainingHeight bool
	Crouching     bool
	FacingRight   bool
	Walking       bool
	Firing        bool

	Frame int // Animation frame; written only by the presentation layer

	TransformLeft time.Duration
	StarLeft      time.Duration
	FiringLeft    time.Duration

	Fireballs [MaxFireballs]Fireball
}

// Fireball is one projectile slot. A slot is free while not Visible.
type Fireball struct {
	Rect     physics.Rect
	Velocity physics.Velocity
	Visible  bool
}

// newPlayer places a small player whose draw rect top-left is (x, y).
func newPlayer(x, y float64, p Params) Player {
	tile := p.tile()
	pl := Player{
		Rect:        physics.Rect{X: x, Y: y, W: tile, H: tile},
		Hitbox:      physics.Rect{X: x + tile/4, Y: y, W: tile / 2, H: tile},
		FacingRight: true,
	}
	pl.syncGeometry(p)
	return pl
}

// syncGeometry recomputes both rect sizes from Tall and Crouching with the
// feet kept in place. It must run in the same call that flips either flag.
func (pl *Player) syncGeometry(p Params) {
	tile := p.tile()
	feet := pl.Hitbox.Bottom()
	center := pl.Hitbox.X + pl.Hitbox.W/2

	hitH, drawH := tile, tile
	switch {
	case pl.Tall && pl.Crouching:
		drawH = tile * 1.5
	case pl.Tall:
		hitH, drawH = 2*tile, 2*tile
	}

	pl.Hitbox.W = tile / 2
	pl.Hitbox.H = hitH
	pl.Hitbox.X = center - pl.Hitbox.W/2
	pl.Hitbox.Y = feet - hitH

	pl.Rect.W = tile
	pl.Rect.H = drawH
	pl.syncRender()
}

// syncRender centres the draw rect on the hitbox and aligns their bottoms.
func (pl *Player) syncRender() {
	pl.Rect.X = pl.Hitbox.X - (pl.Rect.W-pl.Hitbox.W)/2
	pl.Rect.Y = pl.Hitbox.Bottom() - pl.Rect.H
}

// grow turns a small player tall and starts the transformation freeze.
func (pl *Player) grow(p Params) {
	pl.Tall = true
	pl.Crouching = false
	pl.syncGeometry(p)
	pl.Transforming = true
	pl.TransformLeft = p.TransformTime
}

// applyIntent converts held input into velocity and pose changes over k
// nominal frames. Accelerations scale linearly with k, friction
// geometrically.
func (pl *Player) applyIntent(in Intent, p Params, k float64) {
	friction := math.Pow(p.Friction, k)
	pl.Walking = false
	switch {
	case in.Left && !pl.Crouching:
		pl.FacingRight = false
		pl.Walking = true
		if pl.Velocity.X > 0 {
			pl.Velocity.X *= friction
		}
		pl.Velocity.X = math.Max(pl.Velocity.X-p.Speed*k, -p.MaxSpeed)
	case in.Right && !pl.Crouching:
		pl.FacingRight = true
		pl.Walking = true
		if pl.Velocity.X < 0 {
			pl.Velocity.X *= friction
		}
		pl.Velocity.X = math.Min(pl.Velocity.X+p.Speed*k, p.MaxSpeed)
	case pl.Velocity.X != 0:
		pl.Velocity.X *= friction
		if math.Abs(pl.Velocity.X) < 0.1 {
			pl.Velocity.X = 0
		}
	}

	switch {
	case in.Duck && pl.Tall && pl.OnSurface && !pl.Walking:
		if !pl.Crouching {
			pl.Crouching = true
			pl.syncGeometry(p)
		}
	case !in.Duck && pl.Crouching:
		pl.Crouching = false
		pl.syncGeometry(p)
	}

	if in.Jump {
		if (!pl.HoldingJump && pl.OnSurface) || (!pl.OnSurface && pl.GainingHeight) {
			pl.Velocity.Y -= p.JumpForce * k
			pl.GainingHeight = pl.Velocity.Y >= p.MaxJump
			pl.HoldingJump = true
			pl.Jumping = true
		}
		return
	}
	if pl.HoldingJump && pl.Velocity.Y < 0 {
		pl.Velocity.Y *= friction
	}
	pl.HoldingJump = false
	pl.GainingHeight = false
}

// fire throws a fireball from the free slot, if any.
// Returns the slot index or -1.
func (pl *Player) fire(p Params) int {
	if !pl.FireForm || pl.Crouching {
		return -1
	}
	slot := -1
	for i := range pl.Fireballs {
		if !pl.Fireballs[i].Visible {
			slot = i
			break
		}
	}
	if slot < 0 {
		return -1
	}

	size := p.tile() / 2
	ball := &pl.Fireballs[slot]
	ball.Rect = physics.Rect{X: pl.Hitbox.Right(), Y: pl.Hitbox.Y, W: size, H: size}
	ball.Velocity = physics.Velocity{X: p.FireballSpeed, Y: p.FireballSpeed}
	if !pl.FacingRight {
		ball.Rect.X = pl.Hitbox.X - size
		ball.Velocity.X = -p.FireballSpeed
	}
	ball.Visible = true

	pl.Firing = true
	pl.FiringLeft = p.FiringTime
	return slot
}

// ActiveFireballs returns the number of visible fireballs.
func (pl *Player) ActiveFireballs() int {
	n := 0
	for _, b := range pl.Fireballs {
		if b.Visible {
			n++
		}
	}
	return n
}

// reset returns the player to small form with its draw rect at (x, y).
func (pl *Player) reset(x, y float64, p Params) {
	*pl = newPlayer(x, y, p)
}
