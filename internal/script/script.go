// Package script runs tengo programs that produce player input for
// headless simulation runs.
//
// A program defines an input function that receives the tick number and a
// read-only view of the player and returns the names of the actions held
// for that tick:
//
//	input := func(tick, player) {
//		if player.on_surface && tick % 30 == 0 {
//			return ["Right", "Jump"]
//		}
//		return ["Right"]
//	}
package script

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Demo walks right, jumps on a fixed cadence and fires in fire form.
const Demo = `
input := func(tick, player) {
	actions := ["Right"]
	if player.x > 500 {
		actions = ["Left"]
	}
	if player.on_surface && tick % 45 < 20 {
		actions = append(actions, "Jump")
	}
	if player.fire_form && tick % 20 == 0 {
		actions = append(actions, "Fire")
	}
	return actions
}
`

// dispatch calls the program's input function once per run.
const dispatch = `
__actions = input(__tick, __player)
`

// modules are the stdlib modules a program may import. Nothing
// nondeterministic or touching the host.
var modules = []string{"math", "text", "fmt", "enum"}

// PlayerView is the state a program can read each tick.
type PlayerView struct {
	X, Y       float64
	VX, VY     float64
	OnSurface  bool
	Tall       bool
	FireForm   bool
	Invincible bool
	Score      int
	Lives      int
}

// Program is a compiled input script. It is not safe for concurrent use.
type Program struct {
	name     string
	compiled *tengo.Compiled
}

// Load reads and compiles the script at path.
func Load(path string) (*Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return Compile(path, src)
}

// Compile compiles src. The name is used in error messages.
func Compile(name string, src []byte) (*Program, error) {
	full := make([]byte, 0, len(src)+len(dispatch)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, dispatch...)

	s := tengo.NewScript(full)
	s.SetImports(stdlib.GetModuleMap(modules...))
	for _, v := range []string{"__tick", "__player", "__actions"} {
		if err := s.Add(v, nil); err != nil {
			return nil, fmt.Errorf("script %s: %w", name, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return &Program{name: name, compiled: compiled}, nil
}

// Name returns the script's path or label.
func (p *Program) Name() string {
	return p.name
}

// Input runs the program for one tick and returns the actions it held.
func (p *Program) Input(tick uint64, view PlayerView) (core.InputFrame, error) {
	frame := core.NewInputFrame()

	if err := p.compiled.Set("__tick", int64(tick)); err != nil { //#nosec G115 -- tick counts stay far below MaxInt64
		return frame, err
	}
	if err := p.compiled.Set("__player", view.object()); err != nil {
		return frame, err
	}
	if err := p.compiled.Run(); err != nil {
		return frame, fmt.Errorf("script %s: tick %d: %w", p.name, tick, err)
	}

	result := p.compiled.Get("__actions")
	switch result.ValueType() {
	case "undefined":
		return frame, nil
	case "array":
	default:
		return frame, fmt.Errorf("script %s: input returned %s, expected array", p.name, result.ValueType())
	}

	for _, v := range result.Array() {
		name, ok := v.(string)
		if !ok {
			return frame, fmt.Errorf("script %s: action %v is not a string", p.name, v)
		}
		a := core.ParseAction(name)
		if a == core.ActionNone {
			return frame, fmt.Errorf("script %s: unknown action %q", p.name, name)
		}
		frame.Set(a)
	}
	return frame, nil
}

func (v PlayerView) object() *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x":          &tengo.Float{Value: v.X},
		"y":          &tengo.Float{Value: v.Y},
		"vx":         &tengo.Float{Value: v.VX},
		"vy":         &tengo.Float{Value: v.VY},
		"on_surface": boolObject(v.OnSurface),
		"tall":       boolObject(v.Tall),
		"fire_form":  boolObject(v.FireForm),
		"invincible": boolObject(v.Invincible),
		"score":      &tengo.Int{Value: int64(v.Score)},
		"lives":      &tengo.Int{Value: int64(v.Lives)},
	}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
