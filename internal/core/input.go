package core

// Action represents a semantic UI action, abstracted from physical key presses.
// Screens work with these intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - previous value / garage tile
	ActionRight          // D, L, Right arrow - next value / garage tile
	ActionConfirm        // Enter, Space - activate the focused button
	ActionBack           // B, Escape - leave the current sub-screen
	ActionQuit           // Ctrl+C - exit the application
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
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
