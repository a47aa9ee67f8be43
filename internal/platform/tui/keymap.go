package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// defaultHoldWindow covers the terminal's initial key-repeat delay so a held
// key reads as continuously down between repeats.
const defaultHoldWindow = 250 * time.Millisecond

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Duck       key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the help line.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Duck, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Duck, k.Fire},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "duck"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.keys.Duck):
		return core.ActionDuck, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// IsScreenshot reports whether the key requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// heldActions are reported every tick while their key is down. Every other
// action fires once per press.
var heldActions = map[core.Action]bool{
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionJump:  true,
	core.ActionDuck:  true,
}

// IsHeld reports whether the action is a held action.
func IsHeld(a core.Action) bool {
	return heldActions[a]
}

// HoldTracker turns key presses into held state. Terminals only report
// presses and repeats, so an action counts as held until no press has been
// seen for the hold window.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses the default.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = defaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press of a held action at now. Opposite directions
// release each other.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// Apply sets every action still held at now on the frame and forgets the
// ones whose window has passed.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Set(a)
	}
}

// Held reports whether the action is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) <= h.window
}

// Clear releases everything.
func (h *HoldTracker) Clear() {
	clear(h.last)
}
