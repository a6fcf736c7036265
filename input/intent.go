package input

// Action discriminates what a bound key asks for
type Action uint8

const (
	ActionNone Action = iota

	// System-level actions
	ActionQuit   // Ctrl+C, Ctrl+Q, window close
	ActionEscape // ESC key ends the session

	// Paddle movement
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "none",
	ActionQuit:      "quit",
	ActionEscape:    "escape",
	ActionLeftUp:    "left-up",
	ActionLeftDown:  "left-down",
	ActionRightUp:   "right-up",
	ActionRightDown: "right-down",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}
