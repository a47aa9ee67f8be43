package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.steps} }

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

type deltaGame struct {
	stubGame
	elapsed time.Duration
}

func (g *deltaGame) StepDelta(_ core.InputFrame, dt time.Duration) core.StepResult {
	g.elapsed += dt
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", "Stub B", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", "Stub A", func() Game { return &stubGame{id: "stub_a"} })

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	var ids []string
	for _, e := range List() {
		if strings.HasPrefix(e.ID, "stub_") {
			ids = append(ids, e.ID+"="+e.Title)
		}
	}
	if got := strings.Join(ids, ","); got != "stub_a=Stub A,stub_b=Stub B" {
		t.Errorf("List() = %v, expected sorted stubs with registered titles", got)
	}

	e, err := Lookup("stub_b")
	if err != nil || e.Title != "Stub B" {
		t.Errorf("Lookup(stub_b) = %+v, %v", e, err)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("Create(nope) expected error")
	}
	if _, err := Lookup("nope"); err == nil {
		t.Error("Lookup(nope) expected error")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub_dup", "Dup", func() Game { return &stubGame{id: "stub_dup"} })

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "stub_dup", func() Game { return &stubGame{id: "stub_dup"} }},
		{"empty id", "", func() Game { return &stubGame{} }},
		{"nil factory", "stub_nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			Register(tt.id, "x", tt.f)
		})
	}
}

func TestStepDelta(t *testing.T) {
	fixed := &stubGame{id: "fixed"}
	StepDelta(fixed, core.NewInputFrame(), time.Second)
	if fixed.steps != 1 {
		t.Errorf("fixed game steps = %d, expected 1", fixed.steps)
	}

	delta := &deltaGame{stubGame: stubGame{id: "delta"}}
	StepDelta(delta, core.NewInputFrame(), 30*time.Millisecond)
	if delta.elapsed != 30*time.Millisecond || delta.steps != 0 {
		t.Errorf("delta game elapsed = %s steps = %d, expected 30ms and 0", delta.elapsed, delta.steps)
	}
}
