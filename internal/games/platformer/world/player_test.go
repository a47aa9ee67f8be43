package world

import (
	"math"
	"testing"
)

func TestSyncGeometry(t *testing.T) {
	tests := []struct {
		name      string
		tall      bool
		crouching bool
		hitH      float64
		drawH     float64
	}{
		{"small", false, false, 64, 64},
		{"tall", true, false, 128, 128},
		{"crouching", true, true, 64, 96},
	}

	p := DefaultParams()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := newPlayer(100, 200, p)
			feet := pl.Hitbox.Bottom()
			center := pl.Hitbox.X + pl.Hitbox.W/2

			pl.Tall = tt.tall
			pl.Crouching = tt.crouching
			pl.syncGeometry(p)

			if pl.Hitbox.H != tt.hitH {
				t.Errorf("hitbox height = %g, expected %g", pl.Hitbox.H, tt.hitH)
			}
			if pl.Rect.H != tt.drawH {
				t.Errorf("rect height = %g, expected %g", pl.Rect.H, tt.drawH)
			}
			if pl.Hitbox.Bottom() != feet || pl.Rect.Bottom() != feet {
				t.Errorf("feet moved: hitbox %g rect %g, expected %g", pl.Hitbox.Bottom(), pl.Rect.Bottom(), feet)
			}
			if got := pl.Rect.X + pl.Rect.W/2; got != center {
				t.Errorf("rect centre = %g, expected %g", got, center)
			}
			if pl.Hitbox.W >= pl.Rect.W {
				t.Errorf("hitbox width %g not inside rect width %g", pl.Hitbox.W, pl.Rect.W)
			}
		})
	}
}

func TestWalkAcceleration(t *testing.T) {
	p := DefaultParams()
	pl := newPlayer(0, 0, p)

	for range 100 {
		pl.applyIntent(Intent{Right: true}, p, 1)
	}
	if pl.Velocity.X != p.MaxSpeed {
		t.Errorf("Velocity.X = %g, expected capped at %g", pl.Velocity.X, p.MaxSpeed)
	}
	if !pl.Walking || !pl.FacingRight {
		t.Error("expected walking right")
	}

	pl.applyIntent(Intent{Left: true}, p, 1)
	want := p.MaxSpeed*p.Friction - p.Speed
	if math.Abs(pl.Velocity.X-want) > 1e-9 {
		t.Errorf("reversal Velocity.X = %g, expected %g", pl.Velocity.X, want)
	}
	if pl.FacingRight {
		t.Error("FacingRight = true after pressing left")
	}
}

func TestIdleFriction(t *testing.T) {
	p := DefaultParams()
	pl := newPlayer(0, 0, p)
	pl.Velocity.X = 0.11

	pl.applyIntent(Intent{}, p, 1)

	if pl.Velocity.X != 0 {
		t.Errorf("Velocity.X = %g, expected snap to 0", pl.Velocity.X)
	}
	if pl.Walking {
		t.Error("Walking = true with no input")
	}
}

func TestJumpHold(t *testing.T) {
	p := DefaultParams()
	pl := newPlayer(0, 0, p)
	pl.OnSurface = true

	pl.applyIntent(Intent{Jump: true}, p, 1)
	if pl.Velocity.Y != -p.JumpForce {
		t.Fatalf("Velocity.Y = %g, expected %g", pl.Velocity.Y, -p.JumpForce)
	}
	if !pl.HoldingJump || !pl.Jumping || !pl.GainingHeight {
		t.Errorf("flags hold=%v jumping=%v gaining=%v, expected all set", pl.HoldingJump, pl.Jumping, pl.GainingHeight)
	}

	// Airborne and still gaining height: the hold keeps pushing.
	pl.OnSurface = false
	pl.applyIntent(Intent{Jump: true}, p, 1)
	if pl.Velocity.Y != -2*p.JumpForce {
		t.Errorf("held Velocity.Y = %g, expected %g", pl.Velocity.Y, -2*p.JumpForce)
	}

	pl.applyIntent(Intent{}, p, 1)
	if want := -2 * p.JumpForce * p.Friction; math.Abs(pl.Velocity.Y-want) > 1e-9 {
		t.Errorf("released Velocity.Y = %g, expected %g", pl.Velocity.Y, want)
	}
	if pl.HoldingJump || pl.GainingHeight {
		t.Error("release left jump flags set")
	}
}

func TestJumpStopsGainingAtMax(t *testing.T) {
	p := DefaultParams()
	pl := newPlayer(0, 0, p)
	pl.GainingHeight = true
	pl.Velocity.Y = p.MaxJump

	pl.applyIntent(Intent{Jump: true}, p, 1)

	if pl.GainingHeight {
		t.Error("GainingHeight = true past the jump cap")
	}
}

func TestNoJumpWithoutGround(t *testing.T) {
	p := DefaultParams()
	pl := newPlayer(0, 0, p)

	pl.applyIntent(Intent{Jump: true}, p, 1)

	if pl.Velocity.Y != 0 || pl.Jumping {
		t.Errorf("jumped in mid-air: vy=%g", pl.Velocity.Y)
	}
}

func TestCrouchRules(t *testing.T) {
	tests := []struct {
		name   string
		tall   bool
		ground bool
		in     Intent
		crouch bool
	}{
		{"tall grounded", true, true, Intent{Duck: true}, true},
		{"small", false, true, Intent{Duck: true}, false},
		{"airborne", true, false, Intent{Duck: true}, false},
		{"walking", true, true, Intent{Duck: true, Right: true}, false},
	}

	p := DefaultParams()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := newPlayer(0, 0, p)
			pl.Tall = tt.tall
			pl.syncGeometry(p)
			pl.OnSurface = tt.ground

			pl.applyIntent(tt.in, p, 1)

			if pl.Crouching != tt.crouch {
				t.Errorf("Crouching = %v, expected %v", pl.Crouching, tt.crouch)
			}
		})
	}
}

func TestStandUp(t *testing.T) {
	p := DefaultParams()
	pl := newPlayer(0, 200, p)
	pl.Tall = true
	pl.syncGeometry(p)
	pl.OnSurface = true
	feet := pl.Hitbox.Bottom()

	pl.applyIntent(Intent{Duck: true}, p, 1)
	if pl.Hitbox.H != 64 {
		t.Fatalf("crouch hitbox height = %g, expected 64", pl.Hitbox.H)
	}

	pl.applyIntent(Intent{}, p, 1)
	if pl.Crouching || pl.Hitbox.H != 128 || pl.Hitbox.Bottom() != feet {
		t.Errorf("stand up: crouching=%v hitbox=%+v", pl.Crouching, pl.Hitbox)
	}
}

func TestCrouchBlocksWalking(t *testing.T) {
	p := DefaultParams()
	pl := newPlayer(0, 0, p)
	pl.Crouching = true

	pl.applyIntent(Intent{Duck: true, Right: true}, p, 1)

	if pl.Velocity.X != 0 || pl.Walking {
		t.Errorf("walked while crouching: vx=%g", pl.Velocity.X)
	}
}

func TestIntentScalesWithDelta(t *testing.T) {
	tests := []struct {
		name string
		k    float64
	}{
		{"half frame", 0.5},
		{"one frame", 1},
		{"three frames", 3},
	}

	p := DefaultParams()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := newPlayer(0, 0, p)
			pl.OnSurface = true
			pl.applyIntent(Intent{Right: true, Jump: true}, p, tt.k)
			if want := p.Speed * tt.k; math.Abs(pl.Velocity.X-want) > 1e-9 {
				t.Errorf("Velocity.X = %g, expected %g", pl.Velocity.X, want)
			}
			if want := -p.JumpForce * tt.k; math.Abs(pl.Velocity.Y-want) > 1e-9 {
				t.Errorf("Velocity.Y = %g, expected %g", pl.Velocity.Y, want)
			}

			pl.Velocity.X = 4
			pl.applyIntent(Intent{}, p, tt.k)
			if want := 4 * math.Pow(p.Friction, tt.k); math.Abs(pl.Velocity.X-want) > 1e-9 {
				t.Errorf("coasting Velocity.X = %g, expected %g", pl.Velocity.X, want)
			}
		})
	}
}
