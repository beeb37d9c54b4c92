package world

import "github.com/samdwyer/casinobreakout/internal/gamedata"

// EffectKind is the category of an object's consequence on pickup.
type EffectKind string

const (
	EffectCash   EffectKind = gamedata.EffectCash
	EffectHazard EffectKind = gamedata.EffectHazard
	EffectHeal   EffectKind = gamedata.EffectHeal
	EffectNone   EffectKind = gamedata.EffectNone
)

// Object is something lying on a floor cell.
type Object struct {
	Symbol      rune
	Description string
	Effect      EffectKind
	Value       int
}

// NewObject creates an object from a pickup definition.
func NewObject(def *gamedata.PickupDef) Object {
	return Object{
		Symbol:      def.GlyphRune(),
		Description: def.Description,
		Effect:      EffectKind(def.Effect),
		Value:       def.Value,
	}
}
