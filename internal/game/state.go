// Package game provides the interactive loop that connects the terminal
// to the turn engine.
package game

// Mode represents what the loop is waiting for.
type Mode int

const (
	// ModePlaying reads keys and resolves them as turns.
	ModePlaying Mode = iota
	// ModeOver shows the verdict and waits for any key.
	ModeOver
	// ModeDone ends the loop.
	ModeDone
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeOver:
		return "over"
	case ModeDone:
		return "done"
	default:
		return "unknown"
	}
}
