package repl

// State is the command loop state.
type State int

const (
	// Running accepts further input.
	Running State = iota
	// Stopped is terminal; no further input is read.
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
