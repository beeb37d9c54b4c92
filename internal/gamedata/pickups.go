package gamedata

import (
	"errors"
	"fmt"
)

// Effect values used by pickups.json.
const (
	EffectCash   = "cash"
	EffectHazard = "hazard"
	EffectHeal   = "heal"
	EffectNone   = "none"
)

// PickupDef defines a floor object loaded from JSON.
//
// A pickup with a non-empty Glyph is placed wherever the layout carries that
// glyph. A pickup with a positive Chance is scattered over plain floor tiles
// instead.
type PickupDef struct {
	ID          string  `json:"id"`
	Glyph       string  `json:"glyph"`
	Description string  `json:"description"`
	Effect      string  `json:"effect"`
	Value       int     `json:"value"`
	Chance      float64 `json:"chance"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PickupDef) GlyphRune() rune {
	if len(p.Glyph) == 0 {
		return '?'
	}
	return rune(p.Glyph[0])
}

// PickupsFile represents the structure of pickups.json.
type PickupsFile struct {
	Placed    []PickupDef `json:"placed"`
	Scattered []PickupDef `json:"scattered"`
}

// PickupCatalog holds loaded pickup definitions and provides lookup utilities.
type PickupCatalog struct {
	byGlyph   map[rune]*PickupDef
	placed    []PickupDef
	scattered []PickupDef
}

// NewPickupCatalog creates a catalog from loaded pickup definitions.
func NewPickupCatalog(placed, scattered []PickupDef) *PickupCatalog {
	c := &PickupCatalog{
		byGlyph:   make(map[rune]*PickupDef),
		placed:    placed,
		scattered: scattered,
	}
	for i := range placed {
		c.byGlyph[placed[i].GlyphRune()] = &placed[i]
	}
	return c
}

// LoadPickupCatalog loads and creates a catalog from the embedded pickups.json.
func LoadPickupCatalog() (*PickupCatalog, error) {
	file, err := Load[PickupsFile]("pickups.json")
	if err != nil {
		return nil, err
	}
	if len(file.Placed) == 0 {
		return nil, errors.New("no placed pickups loaded from pickups.json")
	}
	for _, p := range append(append([]PickupDef{}, file.Placed...), file.Scattered...) {
		switch p.Effect {
		case EffectCash, EffectHazard, EffectHeal, EffectNone:
		default:
			return nil, fmt.Errorf("pickup %q has unknown effect %q", p.ID, p.Effect)
		}
	}
	return NewPickupCatalog(file.Placed, file.Scattered), nil
}

// MustLoadPickupCatalog loads a catalog, panicking on error.
func MustLoadPickupCatalog() *PickupCatalog {
	catalog, err := LoadPickupCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// ByGlyph returns the placed pickup for a layout glyph, or nil if the glyph
// is not a pickup.
func (c *PickupCatalog) ByGlyph(glyph rune) *PickupDef {
	return c.byGlyph[glyph]
}

// Placed returns the pickups bound to layout glyphs.
func (c *PickupCatalog) Placed() []PickupDef {
	return c.placed
}

// Scattered returns the pickups randomly strewn over plain floor.
func (c *PickupCatalog) Scattered() []PickupDef {
	return c.scattered
}
