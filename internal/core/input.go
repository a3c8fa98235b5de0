package core

// Action represents a semantic demo action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionQuit         // Q, Esc, Ctrl+C - exit the demo immediately
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction converts a lowercase action name ("up", "left", ...) to an Action.
// Returns ActionNone for unknown names.
func ParseAction(name string) Action {
	switch name {
	case "up":
		return ActionUp
	case "down":
		return ActionDown
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	case "quit":
		return ActionQuit
	default:
		return ActionNone
	}
}

// InputFrame holds the input events drained during one frame, in arrival order.
// Repeated presses are kept: demos that move by discrete steps rely on them.
type InputFrame struct {
	events []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.events = append(f.events, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.events {
		if e == a {
			return true
		}
	}
	return false
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, e := range f.events {
		if e == a {
			n++
		}
	}
	return n
}

// Events returns the actions of this frame in arrival order.
func (f InputFrame) Events() []Action {
	return f.events
}

// Len returns the number of events in the frame.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{events: make([]Action, len(f.events))}
	copy(clone.events, f.events)
	return clone
}
