package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Archetype values used by enemies in roster.json.
const (
	ArchetypeChaser = "chaser"
	ArchetypeDrone  = "drone"
)

// ActorDef defines the starting state of one actor loaded from JSON.
type ActorDef struct {
	ID        string `json:"id"`        // Unique identifier (e.g., "security")
	Name      string `json:"name"`      // Display name (e.g., "Guard Captain")
	Glyph     string `json:"glyph"`     // Single character for rendering (e.g., "G")
	Color     string `json:"color"`     // Hex color code (e.g., "#FF5555")
	Archetype string `json:"archetype"` // "chaser" or "drone"; empty for the player
	HP        int    `json:"hp"`
	Stamina   int    `json:"stamina"`
	Cash      int    `json:"cash"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	if len(a.Glyph) == 0 {
		return '?'
	}
	return rune(a.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (a *ActorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(a.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Roster represents the structure of roster.json.
type Roster struct {
	Player  ActorDef   `json:"player"`
	Enemies []ActorDef `json:"enemies"`
}

// LoadRoster loads the player and enemy definitions from the embedded roster.json.
func LoadRoster() (*Roster, error) {
	roster, err := Load[Roster]("roster.json")
	if err != nil {
		return nil, err
	}
	if roster.Player.ID == "" {
		return nil, errors.New("no player defined in roster.json")
	}
	for _, e := range roster.Enemies {
		if e.Archetype != ArchetypeChaser && e.Archetype != ArchetypeDrone {
			return nil, fmt.Errorf("enemy %q has unknown archetype %q", e.ID, e.Archetype)
		}
	}
	return &roster, nil
}

// MustLoadRoster loads the roster, panicking on error.
func MustLoadRoster() *Roster {
	roster, err := LoadRoster()
	if err != nil {
		panic(err)
	}
	return roster
}
