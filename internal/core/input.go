package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // Left arrow, h, a - move one cell left
	ActionRight                // Right arrow, l, d - move one cell right
	ActionToggleGravity        // Space - flip gravity
	ActionQuit                 // q - end the session
	ActionRestart              // r - replay the level after it ended
	ActionBack                 // b, Esc - back to the level menu after it ended
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "MoveLeft"
	case ActionRight:
		return "MoveRight"
	case ActionToggleGravity:
		return "ToggleGravity"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
type InputFrame struct {
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

// First returns the first action of priority that is set in the frame,
// or ActionNone.
func (f InputFrame) First(priority ...Action) Action {
	for _, a := range priority {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}
