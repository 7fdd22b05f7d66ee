package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionQuit         // Q, Esc, Ctrl+C - exit game/session
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions pressed between two simulation ticks,
// in arrival order. Repeated presses are kept.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the pressed actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	for _, pressed := range f.actions {
		if pressed == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
