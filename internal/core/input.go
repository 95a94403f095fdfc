package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionUp                     // K, Up arrow - move cursor up
	ActionDown                   // J, Down arrow - move cursor down
	ActionLeft                   // H, Left arrow - move cursor left
	ActionRight                  // L, Right arrow - move cursor right
	ActionConfirm                // Enter, Space - capture or pick color under cursor
	ActionUndo                   // U, Ctrl+Z
	ActionRedo                   // R, Ctrl+Y
	ActionReset                  // N - deal a new board
	ActionToggleTopology         // T - plane <-> torus
	ActionToggleAdjacency        // D - orthogonal <-> diagonal
	ActionQuit                   // Q, Ctrl+C
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
	case ActionConfirm:
		return "Confirm"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionReset:
		return "Reset"
	case ActionToggleTopology:
		return "ToggleTopology"
	case ActionToggleAdjacency:
		return "ToggleAdjacency"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NoColor marks an input frame without a direct color pick.
const NoColor = -1

// InputFrame holds the input collected for one step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Color is a palette index picked with the number keys, or NoColor.
	Color int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Color:   NoColor,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetColor records a direct color pick.
func (f *InputFrame) SetColor(i int) {
	f.Color = i
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HasColor reports whether a color was picked this frame.
func (f InputFrame) HasColor() bool {
	return f.Color != NoColor
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && !f.HasColor()
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Color = NoColor
}
