package physics

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching horizontal", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching vertical", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"contained", Rect{0, 0, 20, 20}, Rect{5, 5, 1, 1}, true},
		{"fractional overlap", Rect{0, 0, 10, 10}, Rect{9.5, 9.5, 10, 10}, true},
		{"empty width", Rect{0, 0, 0, 10}, Rect{0, 0, 10, 10}, false},
		{"negative height", Rect{0, 0, 10, -1}, Rect{0, 0, 10, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDetectScenarioFallOntoBlock(t *testing.T) {
	hitbox := Rect{100, 100, 32, 64}
	block := Rect{96, 164, 64, 64}

	axis := Detect(hitbox, Velocity{0, 5}, block, 32)
	if axis != AxisY {
		t.Fatalf("Detect() = %v, expected %v", axis, AxisY)
	}

	Resolve(&hitbox, block, axis)
	if hitbox.Y != 100 {
		t.Errorf("Resolve() hitbox.Y = %v, expected 100", hitbox.Y)
	}
}

func TestDetectFailSafe(t *testing.T) {
	mover := Rect{0, 0, 10, 10}
	target := Rect{15, 0, 10, 10}
	vel := Velocity{20, 0}

	tests := []struct {
		name   string
		mover  Rect
		vel    Velocity
		target Rect
		step   int
	}{
		{"zero step", mover, vel, target, 0},
		{"negative step", mover, vel, target, -4},
		{"empty mover", Rect{0, 0, 0, 10}, vel, target, 1},
		{"empty target", mover, vel, Rect{15, 0, 10, 0}, 1},
		{"NaN velocity", mover, Velocity{math.NaN(), 0}, target, 1},
		{"infinite velocity", mover, Velocity{0, math.Inf(1)}, target, 1},
		{"zero velocity while overlapping", Rect{16, 0, 10, 10}, Velocity{}, target, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.mover, tc.vel, tc.target, tc.step); got != AxisNone {
				t.Errorf("Detect() = %v, expected %v", got, AxisNone)
			}
		})
	}
}

func TestDetectXBeforeY(t *testing.T) {
	// Diagonal approach whose X sweep already overlaps: X wins.
	mover := Rect{0, 0, 10, 10}
	target := Rect{12, 5, 10, 10}

	if got := Detect(mover, Velocity{5, 5}, target, 1); got != AxisX {
		t.Errorf("Detect() = %v, expected %v", got, AxisX)
	}
}

func TestDetectHighSpeedNoTunnelling(t *testing.T) {
	// A single post-move test would miss this: the goal lies past the target.
	mover := Rect{0, 0, 8, 8}
	target := Rect{100, 0, 16, 16}

	if got := Detect(mover, Velocity{400, 0}, target, 16); got != AxisX {
		t.Errorf("Detect() = %v, expected %v", got, AxisX)
	}
	if got := Detect(mover, Velocity{-400, 0}, target, 16); got != AxisNone {
		t.Errorf("Detect() moving away = %v, expected %v", got, AxisNone)
	}
}

// sweptAxis is the analytic answer for a mover that starts outside target:
// the first axis whose continuous sweep enters the open overlap interval.
func sweptAxis(mover Rect, vel Velocity, target Rect) Axis {
	crosses := func(from, delta, lo, hi float64) bool {
		if delta == 0 {
			return false
		}
		a, b := from, from+delta
		return math.Min(a, b) < hi && math.Max(a, b) > lo
	}

	yBand := mover.Y < target.Bottom() && target.Y < mover.Bottom()
	if yBand && crosses(mover.X, vel.X, target.X-mover.W, target.Right()) {
		return AxisX
	}

	x := mover.X + vel.X
	xBand := x < target.Right() && target.X < x+mover.W
	if xBand && crosses(mover.Y, vel.Y, target.Y-mover.H, target.Bottom()) {
		return AxisY
	}
	return AxisNone
}

func TestDetectMatchesSweptGeometry(t *testing.T) {
	target := Rect{100, 100, 40, 30}
	speeds := []float64{-90, -45, -7, 0, 7, 45, 90}
	steps := []int{1, 5, 13, 30} // all <= min(target.W, target.H)

	checked := 0
	for x := 20.0; x <= 180; x += 20 {
		for y := 20.0; y <= 180; y += 20 {
			mover := Rect{x, y, 20, 20}
			if mover.Intersects(target) {
				continue
			}
			for _, vx := range speeds {
				for _, vy := range speeds {
					vel := Velocity{vx, vy}
					expected := sweptAxis(mover, vel, target)
					for _, step := range steps {
						checked++
						if got := Detect(mover, vel, target, step); got != expected {
							t.Errorf("Detect(%+v, %+v, step=%d) = %v, expected %v",
								mover, vel, step, got, expected)
						}
					}
				}
			}
		}
	}
	if checked == 0 {
		t.Fatal("no cases generated")
	}
}

func TestDetectTerminatesOnFractionalGoal(t *testing.T) {
	mover := Rect{0.1, 0.3, 4, 4}
	target := Rect{1000, 1000, 4, 4}

	// Steps never land on the goal exactly; the clamp must end the walk.
	if got := Detect(mover, Velocity{33.333, -17.77}, target, 7); got != AxisNone {
		t.Errorf("Detect() = %v, expected %v", got, AxisNone)
	}
	if got := Detect(Rect{1e17, 0, 4, 4}, Velocity{3, 0}, target, 1); got != AxisNone {
		t.Errorf("Detect() at large magnitude = %v, expected %v", got, AxisNone)
	}
}

func TestResolveFlush(t *testing.T) {
	target := Rect{100, 100, 50, 40}

	tests := []struct {
		name  string
		mover Rect
		axis  Axis
		want  Rect
	}{
		{"from left", Rect{60, 110, 50, 10}, AxisX, Rect{50, 110, 50, 10}},
		{"from right", Rect{140, 110, 20, 10}, AxisX, Rect{150, 110, 20, 10}},
		{"from above", Rect{110, 90, 10, 20}, AxisY, Rect{110, 80, 10, 20}},
		{"from below", Rect{110, 130, 10, 20}, AxisY, Rect{110, 140, 10, 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.mover
			Resolve(&got, target, tc.axis)
			if got != tc.want {
				t.Fatalf("Resolve() = %+v, expected %+v", got, tc.want)
			}
			if area := got.Overlap(target); area != 0 {
				t.Errorf("Overlap() after Resolve = %v, expected 0", area)
			}

			touching := false
			switch tc.axis {
			case AxisX:
				touching = got.Right() == target.X || got.X == target.Right()
			case AxisY:
				touching = got.Bottom() == target.Y || got.Y == target.Bottom()
			}
			if !touching {
				t.Errorf("Resolve() left no shared edge: %+v vs %+v", got, target)
			}
		})
	}
}

func TestResolveNoOp(t *testing.T) {
	target := Rect{0, 0, 10, 10}
	mover := Rect{5, 5, 10, 10}

	got := mover
	Resolve(&got, target, AxisNone)
	if got != mover {
		t.Errorf("Resolve(AxisNone) moved mover to %+v", got)
	}

	got = mover
	Resolve(&got, Rect{0, 0, 0, 0}, AxisX)
	if got != mover {
		t.Errorf("Resolve(empty target) moved mover to %+v", got)
	}

	Resolve(nil, target, AxisX) // must not panic
}
