package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/casinobreakout/internal/engine"
	"github.com/samdwyer/casinobreakout/internal/entity"
	"github.com/samdwyer/casinobreakout/internal/world"
)

const (
	title    = "CASINO BREAKOUT"
	hudRow   = 1
	boardRow = 3
	// LogWidth is the column at which log messages are wrapped.
	LogWidth = 70

	exitSymbol = 'E'
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	wrap   lipgloss.Style
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	// A renderer bound to io.Discard has no color profile, so wrapping
	// never injects escape sequences into the cells we draw.
	plain := lipgloss.NewRenderer(io.Discard)
	return &Renderer{
		screen: screen,
		wrap:   plain.NewStyle().Width(LogWidth),
	}
}

// Render draws the HUD, the board, the message log and a status line.
func (r *Renderer) Render(snap engine.Snapshot, status string) {
	r.screen.Clear()

	r.screen.DrawText(0, 0, title, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	r.screen.DrawText(0, hudRow, HUD(snap), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.drawBoard(snap)

	y := boardRow + snap.Height + 1
	if len(snap.Log) > 0 {
		r.screen.DrawText(0, y, "Log:", tcell.StyleDefault.Foreground(tcell.ColorGray))
		y++
		for _, entry := range snap.Log {
			for _, line := range r.WrapLog(entry) {
				r.screen.DrawText(1, y, "- "+line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
				y++
			}
		}
	}

	if status != "" {
		r.screen.DrawText(0, y+1, status, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true))
	}

	r.screen.Show()
}

// drawBoard draws, per cell and in priority order: the runner, a living
// enemy, the exit, an object, then the tile.
func (r *Renderer) drawBoard(snap engine.Snapshot) {
	enemies := make(map[entity.Position]entity.Entity, len(snap.Enemies))
	for i := len(snap.Enemies) - 1; i >= 0; i-- {
		if e := snap.Enemies[i]; e.IsAlive() {
			enemies[e.Pos] = e
		}
	}

	for y, row := range snap.Cells {
		for x, tile := range row {
			pos := entity.Position{X: x, Y: y}
			symbol, style := tile.Rune(), tileStyle(tile)

			if pos == snap.Player.Pos {
				symbol = snap.Player.Symbol
				style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
			} else if e, ok := enemies[pos]; ok {
				symbol = e.Symbol
				style = tcell.StyleDefault.Foreground(e.Color).Bold(true)
			} else if pos == snap.Exit {
				symbol = exitSymbol
				style = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
			} else if obj, ok := snap.Objects[pos]; ok {
				symbol = obj.Symbol
				style = objectStyle(obj)
			}

			r.screen.SetContent(x, boardRow+y, symbol, style)
		}
	}
}

// WrapLog splits a log message into lines no wider than LogWidth.
func (r *Renderer) WrapLog(msg string) []string {
	lines := strings.Split(r.wrap.Render(msg), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// HUD formats the status bar: health, stamina and wanted bars, then cash,
// turn and alert counters.
func HUD(snap engine.Snapshot) string {
	return fmt.Sprintf("%s  %s  %s  $%02d  Turn %02d  Alert %d",
		bar("HP", snap.Player.Health, entity.MaxHealth, '♥'),
		bar("ST", snap.Player.Stamina, entity.MaxStamina, '▮'),
		bar("WT", snap.Wanted, engine.MaxWanted, '!'),
		snap.Player.Cash,
		snap.Turn,
		snap.Alert,
	)
}

func bar(label string, value, maximum int, icon rune) string {
	value = min(max(0, value), maximum)
	return label + "[" + strings.Repeat(string(icon), value) + strings.Repeat(".", maximum-value) + "]"
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// objectStyle colors an object by what it does to the runner.
func objectStyle(obj world.Object) tcell.Style {
	switch obj.Effect {
	case world.EffectCash:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.EffectHazard:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case world.EffectHeal:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault
	}
}
