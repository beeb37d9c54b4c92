package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/casinobreakout/internal/entity"
	"github.com/samdwyer/casinobreakout/internal/world"
)

func TestNewState(t *testing.T) {
	s, err := NewState(context.Background(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}

	p := s.Player
	if p.Pos != (entity.Position{X: 1, Y: 1}) || p.Health != 10 || p.Stamina != 8 || p.Cash != 0 {
		t.Errorf("player = %v hp %d st %d cash %d, want (1,1) 10/8/0", p.Pos, p.Health, p.Stamina, p.Cash)
	}
	if s.Exit != (entity.Position{X: 20, Y: 10}) {
		t.Errorf("Exit = %v, want (20,10)", s.Exit)
	}
	if len(s.Enemies) != 4 || s.AliveEnemyCount() != 4 {
		t.Errorf("enemies = %d (%d alive), want 4", len(s.Enemies), s.AliveEnemyCount())
	}
	if s.Turn != 0 || s.Alert != 0 || s.Wanted != 0 {
		t.Errorf("counters = %d/%d/%d, want zeros", s.Turn, s.Alert, s.Wanted)
	}
	if s.Log.Len() != 2 {
		t.Errorf("Log.Len() = %d, want 2 opening messages", s.Log.Len())
	}

	counts := map[world.EffectKind]int{}
	for pos, obj := range s.Objects {
		counts[obj.Effect]++
		if tile := s.Board.GetTile(pos); tile != world.TileFloor {
			t.Errorf("tile under %s at %v = %q, want floor", obj.Description, pos, tile)
		}
	}
	if counts[world.EffectCash] != 5 || counts[world.EffectHazard] != 3 {
		t.Errorf("object counts = %v, want 5 cash and 3 hazards", counts)
	}
}

func TestRaiseWantedClamps(t *testing.T) {
	s := newArenaState(t, openArena, pos(1, 1))

	s.RaiseWanted(7)
	s.RaiseWanted(7)
	if s.Wanted != MaxWanted {
		t.Errorf("Wanted = %d, want %d", s.Wanted, MaxWanted)
	}

	s.RaiseWanted(-20)
	if s.Wanted != 0 {
		t.Errorf("Wanted = %d, want 0", s.Wanted)
	}
}

func TestEnemyAtSkipsDead(t *testing.T) {
	dead := newGuard("Drone", pos(2, 1), 0, 8)
	live := newGuard("Security", pos(3, 1), 6, 8)
	s := newArenaState(t, openArena, pos(1, 1), dead, live)

	if got := s.EnemyAt(pos(2, 1)); got != nil {
		t.Errorf("EnemyAt(dead cell) = %v, want nil", got.Name)
	}
	if got := s.EnemyAt(pos(3, 1)); got != live {
		t.Error("EnemyAt(live cell) should return the living enemy")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	guard := newGuard("Security", pos(3, 3), 6, 8)
	s := newArenaState(t, openArena, pos(1, 1), guard)
	s.Objects[pos(2, 2)] = cashBundle()
	s.Log.Add("hello")

	snap := s.Snapshot()
	snap.Player.Cash = 99
	snap.Enemies[0].Health = 0
	delete(snap.Objects, pos(2, 2))
	snap.Cells[1][1] = world.TileWall
	snap.Log[0] = "changed"

	if s.Player.Cash != 0 || guard.Health != 6 {
		t.Error("snapshot mutation leaked into entities")
	}
	if _, ok := s.Objects[pos(2, 2)]; !ok {
		t.Error("snapshot mutation leaked into objects")
	}
	if s.Board.GetTile(pos(1, 1)) != world.TileFloor {
		t.Error("snapshot mutation leaked into board")
	}
	if s.Log.Last() != "hello" {
		t.Error("snapshot mutation leaked into log")
	}
	if snap.Width != 5 || snap.Height != 5 || snap.Exit != s.Exit {
		t.Errorf("snapshot geometry = %dx%d exit %v", snap.Width, snap.Height, snap.Exit)
	}
}
