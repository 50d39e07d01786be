package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer up (Snake)
	ActionDown           // S, Down arrow - steer down / soft drop
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionRotate         // Z - rotate piece (level-triggered, games debounce it)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
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

// InputFrame represents the input snapshot for one simulation tick.
// It contains all actions that were active during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// EdgeState is the state of an EdgeDetector.
type EdgeState uint8

const (
	EdgeIdle EdgeState = iota
	EdgePressed
)

// EdgeDetector turns a level-triggered input (key held or not) into a
// rising-edge trigger. Holding the input across any number of frames fires
// exactly once; the input has to be released before it can fire again.
type EdgeDetector struct {
	state EdgeState
}

// Update feeds the current level and reports whether this frame is a rising edge.
func (e *EdgeDetector) Update(held bool) bool {
	switch e.state {
	case EdgeIdle:
		if held {
			e.state = EdgePressed
			return true
		}
	case EdgePressed:
		if !held {
			e.state = EdgeIdle
		}
	}
	return false
}

// State returns the current detector state.
func (e *EdgeDetector) State() EdgeState {
	return e.state
}

// Reset returns the detector to idle.
func (e *EdgeDetector) Reset() {
	e.state = EdgeIdle
}
