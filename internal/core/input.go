package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionJump           // Space, W, Up - jump (held for height)
	ActionDuck           // S, Down - crouch while tall
	ActionFire           // F, X - throw a fireball in fire form
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// ParseAction returns the action with the given name, case-sensitive as
// produced by String. Unknown names map to ActionNone.
func ParseAction(name string) Action {
	for a := ActionLeft; a <= ActionPause; a++ {
		if a.String() == name {
			return a
		}
	}
	return ActionNone
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Held actions (Left, Right, Jump, Duck) stay set for every tick the key is down.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
