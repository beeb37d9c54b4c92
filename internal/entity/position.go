// Package entity provides the actors of the casino: the runner and the
// security staff chasing them.
package entity

// Position is a cell coordinate on the board. It is comparable, so it can key
// a map directly.
type Position struct {
	X, Y int
}

// Add returns the position displaced by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Clamp bounds each axis independently to [0, width-1] and [0, height-1].
func (p Position) Clamp(width, height int) Position {
	return Position{X: clamp(p.X, 0, width-1), Y: clamp(p.Y, 0, height-1)}
}

// StepToward returns the single-cell step from p toward target, taking the
// sign of the difference on each axis. Diagonal steps are allowed.
func (p Position) StepToward(target Position) Position {
	return Position{X: sign(target.X - p.X), Y: sign(target.Y - p.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
