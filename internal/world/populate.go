package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/casinobreakout/internal/entity"
	"github.com/samdwyer/casinobreakout/internal/gamedata"
	"github.com/samdwyer/casinobreakout/internal/telemetry"
)

// Chance yields uniform draws in [0,1).
type Chance interface {
	Float64() float64
}

// PopulateObjects builds the object table for a freshly parsed board.
//
// Cells carrying a placed-pickup glyph become that pickup. Every other floor
// cell takes one draw per scattered pickup, in row-major order, and receives
// the first one whose chance the draw falls under. Afterwards every object
// cell is rewritten to floor so the object layer alone describes it.
func PopulateObjects(ctx context.Context, b *Board, catalog *gamedata.PickupCatalog, rng Chance) map[entity.Position]Object {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "board.populate")
	defer span.End()

	objects := make(map[entity.Position]Object)
	placed, scattered := 0, 0

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			pos := entity.Position{X: x, Y: y}
			tile := b.Tiles[y][x]

			if def := catalog.ByGlyph(tile.Rune()); def != nil {
				objects[pos] = NewObject(def)
				placed++
				continue
			}
			if tile != TileFloor {
				continue
			}
			for i := range catalog.Scattered() {
				def := &catalog.Scattered()[i]
				if rng.Float64() < def.Chance {
					objects[pos] = NewObject(def)
					scattered++
					break
				}
			}
		}
	}

	for pos := range objects {
		b.Tiles[pos.Y][pos.X] = TileFloor
	}

	span.SetAttributes(
		attribute.Int("objects.placed", placed),
		attribute.Int("objects.scattered", scattered),
	)
	return objects
}
