package core

// Action represents a semantic game action, abstracted from physical key
// presses. Input engines (keyboard, mouse, SSH session) translate device
// events into actions; the state machine decides what each action means
// in the current state.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space/Up/click - start a session or flap
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
