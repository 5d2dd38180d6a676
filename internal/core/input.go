package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - accelerate left
	ActionRight          // Right arrow, D - accelerate right
	ActionUp             // Up arrow, W, Space - jump while grounded
	ActionDown           // Down arrow, S - fast-fall
	ActionAction         // X, Enter - reserved for interactions
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - respawn and restart the run
	ActionDebug          // Tab - toggle the debug HUD
	ActionQuit           // Q, Ctrl+C - exit game
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionAction:
		return "Action"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionDebug:
		return "Debug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lowercase action name back to its Action.
func ParseAction(name string) (Action, bool) {
	for a := ActionLeft; a <= ActionQuit; a++ {
		if strings.ToLower(a.String()) == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame is the input snapshot for one simulation tick.
// Movement actions (Left, Right, Up, Down, Action) are held flags: present for
// every tick the key is considered down. Pause, Restart and Debug are edges,
// present only on the tick they were pressed.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
