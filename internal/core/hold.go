package core

// HeldInput turns key press events into per-tick input frames.
//
// Terminals report key presses and auto-repeats but no releases, so a held
// action stays active for a number of ticks after its last press: initial
// ticks after the first press, long enough to bridge the auto-repeat delay,
// and repeat ticks after each auto-repeat. Edge actions (Pause, Restart,
// Debug, Quit) are active for exactly one frame.
type HeldInput struct {
	initial   int
	repeat    int
	remaining map[Action]int
	edges     InputFrame
}

// NewHeldInput creates a tracker. Values below 1 are raised to 1.
func NewHeldInput(initial, repeat int) *HeldInput {
	return &HeldInput{
		initial:   max(initial, 1),
		repeat:    max(repeat, 1),
		remaining: make(map[Action]int),
		edges:     NewInputFrame(),
	}
}

// IsHeldAction reports whether a is a held movement action rather than an edge.
func IsHeldAction(a Action) bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown, ActionAction:
		return true
	default:
		return false
	}
}

// opposite returns the action cancelled by pressing a.
func opposite(a Action) Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}

// Press records a key press or auto-repeat of a.
func (h *HeldInput) Press(a Action) {
	if a == ActionNone {
		return
	}
	if !IsHeldAction(a) {
		h.edges.Set(a)
		return
	}

	// A press of the other direction means this one was released
	delete(h.remaining, opposite(a))

	if h.remaining[a] > 0 {
		h.remaining[a] = h.repeat
	} else {
		h.remaining[a] = h.initial
	}
}

// Release ends a held action immediately, for sources that report releases.
func (h *HeldInput) Release(a Action) {
	delete(h.remaining, a)
}

// Frame returns the input for the next tick and advances the hold timers.
func (h *HeldInput) Frame() InputFrame {
	f := h.edges.Clone()
	h.edges.Clear()

	for a, n := range h.remaining {
		f.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return f
}

// Reset drops every held and pending action.
func (h *HeldInput) Reset() {
	clear(h.remaining)
	h.edges.Clear()
}
