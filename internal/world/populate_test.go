package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/casinobreakout/internal/entity"
	"github.com/samdwyer/casinobreakout/internal/gamedata"
)

// fixedChance returns the same draw every time.
type fixedChance float64

func (f fixedChance) Float64() float64 { return float64(f) }

func TestPopulateObjectsPlacedGlyphs(t *testing.T) {
	catalog := gamedata.MustLoadPickupCatalog()
	b, err := ParseBoard([]string{"######", "#.$^.#", "#....#", "######"}, catalog)
	if err != nil {
		t.Fatalf("ParseBoard() error = %v", err)
	}

	objects := PopulateObjects(context.Background(), b, catalog, fixedChance(0.99))

	if len(objects) != 2 {
		t.Fatalf("len(objects) = %d, want 2", len(objects))
	}

	cash, ok := objects[entity.Position{X: 2, Y: 1}]
	if !ok || cash.Effect != EffectCash || cash.Value != 5 {
		t.Errorf("object at (2,1) = %+v, want cash +5", cash)
	}
	spill, ok := objects[entity.Position{X: 3, Y: 1}]
	if !ok || spill.Effect != EffectHazard || spill.Value != -2 {
		t.Errorf("object at (3,1) = %+v, want hazard -2", spill)
	}

	for pos := range objects {
		if got := b.GetTile(pos); got != TileFloor {
			t.Errorf("tile under object at %v = %q, want floor", pos, got)
		}
	}
}

func TestPopulateObjectsScattersOnPlainFloor(t *testing.T) {
	catalog := gamedata.MustLoadPickupCatalog()
	b, err := ParseBoard([]string{"#####", "#.$.#", "#...#", "#####"}, catalog)
	if err != nil {
		t.Fatalf("ParseBoard() error = %v", err)
	}

	objects := PopulateObjects(context.Background(), b, catalog, fixedChance(0.0))

	floor := 5 // six interior cells, one of them the cash bundle
	heals := 0
	for _, obj := range objects {
		if obj.Effect == EffectHeal {
			heals++
		}
	}
	if heals != floor {
		t.Errorf("heal kits = %d, want %d", heals, floor)
	}
	if got := objects[entity.Position{X: 2, Y: 1}]; got.Effect != EffectCash {
		t.Errorf("cash bundle was replaced by %+v", got)
	}
	for pos := range objects {
		if b.GetTile(pos) == TileWall {
			t.Errorf("object placed on wall at %v", pos)
		}
	}
}

func TestPopulateObjectsScatterRate(t *testing.T) {
	catalog := gamedata.MustLoadPickupCatalog()
	rng := rand.New(rand.NewSource(7))

	total, floor := 0, 0
	for i := 0; i < 200; i++ {
		b, err := ParseBoard(gamedata.MustLoadLayout(), catalog)
		if err != nil {
			t.Fatalf("ParseBoard() error = %v", err)
		}
		for _, obj := range PopulateObjects(context.Background(), b, catalog, rng) {
			if obj.Effect == EffectHeal {
				total++
			}
		}
		floor += 143
	}

	rate := float64(total) / float64(floor)
	if rate < 0.04 || rate > 0.08 {
		t.Errorf("heal kit rate = %.3f, want about 0.06", rate)
	}
}
