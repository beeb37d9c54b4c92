package engine

import (
	"fmt"
	"strings"

	"github.com/samdwyer/casinobreakout/internal/entity"
)

// Action is the kind of a player intent.
type Action int

const (
	ActionUnknown Action = iota
	ActionMove
	ActionRest
	ActionGamble
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionRest:
		return "rest"
	case ActionGamble:
		return "gamble"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// The eight unit directions a runner can step in.
var (
	North     = entity.Position{X: 0, Y: -1}
	South     = entity.Position{X: 0, Y: 1}
	West      = entity.Position{X: -1, Y: 0}
	East      = entity.Position{X: 1, Y: 0}
	NorthWest = entity.Position{X: -1, Y: -1}
	NorthEast = entity.Position{X: 1, Y: -1}
	SouthWest = entity.Position{X: -1, Y: 1}
	SouthEast = entity.Position{X: 1, Y: 1}
)

// Intent is one discrete action consumed by exactly one turn.
type Intent struct {
	Action Action
	Dir    entity.Position // Set for ActionMove
	Token  string          // Raw input, kept for ActionUnknown
}

// Move returns a move intent. A delta outside the 8-neighborhood yields an
// unknown intent.
func Move(dir entity.Position) Intent {
	if !IsDirection(dir) {
		return Unknown(fmt.Sprintf("move(%d,%d)", dir.X, dir.Y))
	}
	return Intent{Action: ActionMove, Dir: dir}
}

// Rest returns a rest intent.
func Rest() Intent { return Intent{Action: ActionRest} }

// Gamble returns a gamble intent.
func Gamble() Intent { return Intent{Action: ActionGamble} }

// Quit returns a quit intent.
func Quit() Intent { return Intent{Action: ActionQuit} }

// Unknown returns an intent for an unrecognized token.
func Unknown(token string) Intent { return Intent{Action: ActionUnknown, Token: token} }

// IsDirection reports whether d is one of the eight unit directions.
func IsDirection(d entity.Position) bool {
	return d != (entity.Position{}) &&
		d.X >= -1 && d.X <= 1 && d.Y >= -1 && d.Y <= 1
}

// String returns a compact form used in logs and span attributes.
func (i Intent) String() string {
	switch i.Action {
	case ActionMove:
		return fmt.Sprintf("move(%d,%d)", i.Dir.X, i.Dir.Y)
	case ActionUnknown:
		return fmt.Sprintf("unknown(%q)", i.Token)
	default:
		return i.Action.String()
	}
}

var tokenDirections = map[string]entity.Position{
	"w": North,
	"s": South,
	"a": West,
	"d": East,
	"q": NorthWest,
	"e": NorthEast,
	"z": SouthWest,
	"c": SouthEast,
}

// ParseIntent maps a typed command to an intent. Matching ignores case and
// surrounding whitespace. WASD move orthogonally, Q/E/Z/C diagonally, R
// rests, F gambles and X quits; anything else is an unknown intent.
func ParseIntent(token string) Intent {
	t := strings.ToLower(strings.TrimSpace(token))
	if dir, ok := tokenDirections[t]; ok {
		return Move(dir)
	}
	switch t {
	case "r", "rest":
		return Rest()
	case "f", "gamble":
		return Gamble()
	case "x", "quit", "exit":
		return Quit()
	default:
		return Unknown(token)
	}
}
