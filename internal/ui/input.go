package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/casinobreakout/internal/engine"
)

// IntentForKey maps a key press to an intent. Arrow keys move, Escape and
// Ctrl-C quit, and printable keys go through engine.ParseIntent, so an
// unbound letter still spends a turn. Other special keys report false and
// are ignored.
func IntentForKey(ev *tcell.EventKey) (engine.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.Quit(), true
	case tcell.KeyUp:
		return engine.Move(engine.North), true
	case tcell.KeyDown:
		return engine.Move(engine.South), true
	case tcell.KeyLeft:
		return engine.Move(engine.West), true
	case tcell.KeyRight:
		return engine.Move(engine.East), true
	case tcell.KeyRune:
		return engine.ParseIntent(string(ev.Rune())), true
	default:
		return engine.Intent{}, false
	}
}

// Prompt is the status line shown while waiting for a move.
const Prompt = "Move (WASD, diagonals Q/E/Z/C, R rest, F gamble, X quit)"
