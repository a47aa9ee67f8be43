// Package registry maps game IDs to factories. Game packages register in
// init(), and the CLI and the terminal loop look them up by ID without
// importing the game types.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is the contract between a pure simulation and the platform.
// Implementations never touch the terminal; the platform maps keys to
// actions, drives the clock and displays the screen buffer.
type Game interface {
	// ID is the key the game is registered and scored under.
	ID() string
	Title() string

	// Reset builds a fresh run for the given screen size and tick rate.
	// It is called before the first Step and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick of 1/TickRate seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// DeltaStepper is implemented by games whose simulation scales with the
// real time between ticks.
type DeltaStepper interface {
	StepDelta(in core.InputFrame, dt time.Duration) core.StepResult
}

// StepDelta advances g by dt when it supports real-time stepping and by one
// fixed tick otherwise.
func StepDelta(g Game, in core.InputFrame, dt time.Duration) core.StepResult {
	if s, ok := g.(DeltaStepper); ok {
		return s.StepDelta(in, dt)
	}
	return g.Step(in)
}

// Factory creates a new, un-reset game instance.
type Factory func() Game

// Entry is one registered game.
type Entry struct {
	ID    string
	Title string
	New   Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]Entry)
)

// Register adds a game. It panics on an empty ID, a nil factory or a
// duplicate ID, all of which are programming errors in an init().
func Register(id, title string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = Entry{ID: id, Title: title, New: f}
}

// List returns every registered game sorted by ID.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	slices.SortFunc(result, func(a, b Entry) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the entry registered under id.
func Lookup(id string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("registry: unknown game %q", id)
	}
	return e, nil
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	e, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return e.New(), nil
}
