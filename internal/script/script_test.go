package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestDemoCompiles(t *testing.T) {
	p, err := Compile("demo", []byte(Demo))
	if err != nil {
		t.Fatalf("Compile(Demo) error = %v", err)
	}

	in, err := p.Input(0, PlayerView{OnSurface: true})
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if !in.Has(core.ActionRight) || !in.Has(core.ActionJump) {
		t.Errorf("Input(0) = %v, expected Right and Jump", in.Actions)
	}

	in, err = p.Input(30, PlayerView{X: 600})
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if !in.Has(core.ActionLeft) || in.Has(core.ActionJump) {
		t.Errorf("Input(30) = %v, expected Left only", in.Actions)
	}
}

func TestInputReadsPlayer(t *testing.T) {
	src := `
input := func(tick, player) {
	if player.fire_form && player.lives == 2 && tick == 7 {
		return ["Fire", "Duck"]
	}
	return []
}
`
	p, err := Compile("reads", []byte(src))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	tests := []struct {
		name   string
		tick   uint64
		view   PlayerView
		expect []core.Action
	}{
		{"match", 7, PlayerView{FireForm: true, Lives: 2}, []core.Action{core.ActionFire, core.ActionDuck}},
		{"wrong tick", 8, PlayerView{FireForm: true, Lives: 2}, nil},
		{"small form", 7, PlayerView{Lives: 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := p.Input(tt.tick, tt.view)
			if err != nil {
				t.Fatalf("Input() error = %v", err)
			}
			if len(in.Actions) != len(tt.expect) {
				t.Errorf("Input() = %v, expected %v", in.Actions, tt.expect)
			}
			for _, a := range tt.expect {
				if !in.Has(a) {
					t.Errorf("Input() missing %v", a)
				}
			}
		})
	}
}

func TestInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"unknown action", `input := func(t, p) { return ["Fly"] }`, "unknown action"},
		{"not an array", `input := func(t, p) { return 3 }`, "expected array"},
		{"non-string action", `input := func(t, p) { return [1] }`, "not a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.name, []byte(tt.src))
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			_, err = p.Input(0, PlayerView{})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Input() error = %v, expected %q", err, tt.wantErr)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile("missing", []byte(`x := 1`)); err == nil {
		t.Error("expected error for a script without input")
	}
	if _, err := Compile("syntax", []byte(`input := func(`)); err == nil {
		t.Error("expected syntax error")
	}
	if _, err := Compile("os", []byte("os := import(\"os\")\ninput := func(t, p) { return [] }")); err == nil {
		t.Error("expected error importing os")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.tengo")
	src := "input := func(tick, player) { return [\"Right\"] }\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name() != path {
		t.Errorf("Name() = %q, expected %q", p.Name(), path)
	}
	in, err := p.Input(1, PlayerView{})
	if err != nil || !in.Has(core.ActionRight) {
		t.Errorf("Input() = %v, %v, expected Right", in.Actions, err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.tengo")); err == nil {
		t.Error("expected error for missing file")
	}
}
