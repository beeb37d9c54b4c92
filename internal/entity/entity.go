package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/casinobreakout/internal/combat"
	"github.com/samdwyer/casinobreakout/internal/gamedata"
)

const (
	// MaxHealth is the upper bound for health.
	MaxHealth = 12
	// MaxStamina is the upper bound for stamina.
	MaxStamina = 12
)

// Kind distinguishes the runner from enemies.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is a mutable actor on the board.
type Entity struct {
	Kind      Kind
	ID        string      // Data identifier (e.g., "guard_captain")
	Name      string      // Display name
	Symbol    rune        // Display symbol
	Color     tcell.Color // Display color
	Archetype string      // "chaser" or "drone" for enemies
	Pos       Position
	Health    int
	Stamina   int
	Cash      int // Player only
}

// NewPlayer creates the runner from a data-driven definition.
func NewPlayer(def *gamedata.ActorDef) *Entity {
	e := newFromDef(KindPlayer, def)
	e.Cash = max(0, def.Cash)
	return e
}

// NewEnemy creates an enemy from a data-driven definition.
func NewEnemy(def *gamedata.ActorDef) *Entity {
	return newFromDef(KindEnemy, def)
}

func newFromDef(kind Kind, def *gamedata.ActorDef) *Entity {
	return &Entity{
		Kind:      kind,
		ID:        def.ID,
		Name:      def.Name,
		Symbol:    def.GlyphRune(),
		Color:     def.TCellColor(),
		Archetype: def.Archetype,
		Pos:       Position{X: def.X, Y: def.Y},
		Health:    clamp(def.HP, 0, MaxHealth),
		Stamina:   clamp(def.Stamina, 0, MaxStamina),
	}
}

// Move displaces the entity by delta, clamping each axis to the board bounds,
// and returns the new position.
func (e *Entity) Move(delta Position, width, height int) Position {
	e.Pos = e.Pos.Add(delta).Clamp(width, height)
	return e.Pos
}

// AdjustHealth adds amount to health and clamps the result to [0, MaxHealth].
func (e *Entity) AdjustHealth(amount int) {
	e.Health = clamp(e.Health+amount, 0, MaxHealth)
}

// AdjustStamina adds amount to stamina and clamps the result to [0, MaxStamina].
func (e *Entity) AdjustStamina(amount int) {
	e.Stamina = clamp(e.Stamina+amount, 0, MaxStamina)
}

// IsAlive returns true if the entity has health remaining.
func (e *Entity) IsAlive() bool { return e.Health > 0 }

// GetName returns the entity's display name.
func (e *Entity) GetName() string { return e.Name }

// GetStamina returns current stamina.
func (e *Entity) GetStamina() int { return e.Stamina }

// Ensure Entity implements combat.Combatant
var _ combat.Combatant = (*Entity)(nil)
