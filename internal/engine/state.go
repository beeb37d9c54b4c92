// Package engine holds the game state and the turn engine that advances it.
package engine

import (
	"context"
	"fmt"

	"github.com/samdwyer/casinobreakout/internal/entity"
	"github.com/samdwyer/casinobreakout/internal/gamedata"
	"github.com/samdwyer/casinobreakout/internal/world"
)

const (
	// MaxWanted caps the wanted level.
	MaxWanted = 10
	// WinCash is the cash the runner must carry through the exit.
	WinCash = 10
	// EscalationAlert is the alert level at which reinforcements end the run.
	EscalationAlert = 10
)

const (
	msgObjective = "Sneak through the casino, grab cash, and reach the exit!"
	msgControls  = "Controls: WASD move, diagonals Q/E/Z/C, R rest, F gamble, X exit."
)

// State is the whole mutable game. After setup only the Engine mutates it.
type State struct {
	Board   *world.Board
	Player  *entity.Entity
	Enemies []*entity.Entity // Spawn order; dead enemies stay in place
	Objects map[entity.Position]world.Object
	Exit    entity.Position
	Turn    int
	Alert   int
	Wanted  int
	Log     *MessageLog
}

// NewState sets up a fresh game from the embedded casino data. rng drives
// the scattering of medical kits.
func NewState(ctx context.Context, rng world.Chance) (*State, error) {
	catalog, err := gamedata.LoadPickupCatalog()
	if err != nil {
		return nil, fmt.Errorf("load pickups: %w", err)
	}
	layout, err := gamedata.LoadLayout()
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	roster, err := gamedata.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	board, err := world.ParseBoard(layout, catalog)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	player := entity.NewPlayer(&roster.Player)
	enemies := make([]*entity.Entity, 0, len(roster.Enemies))
	for i := range roster.Enemies {
		enemies = append(enemies, entity.NewEnemy(&roster.Enemies[i]))
	}
	for _, e := range append([]*entity.Entity{player}, enemies...) {
		if !board.IsPassable(e.Pos) {
			return nil, fmt.Errorf("%s starts on blocked cell %v", e.ID, e.Pos)
		}
	}

	objects := world.PopulateObjects(ctx, board, catalog, rng)

	s := NewStateFrom(board, player, enemies, objects)
	s.Log.Add(msgObjective)
	s.Log.Add(msgControls)
	return s, nil
}

// NewStateFrom assembles a state from already-built parts. The exit is
// derived from the board.
func NewStateFrom(board *world.Board, player *entity.Entity, enemies []*entity.Entity, objects map[entity.Position]world.Object) *State {
	if objects == nil {
		objects = make(map[entity.Position]world.Object)
	}
	return &State{
		Board:   board,
		Player:  player,
		Enemies: enemies,
		Objects: objects,
		Exit:    board.Exit(),
		Log:     NewMessageLog(),
	}
}

// EnemyAt returns the living enemy standing at p, or nil. Dead enemies never
// occupy a cell.
func (s *State) EnemyAt(p entity.Position) *entity.Entity {
	for _, e := range s.Enemies {
		if e.IsAlive() && e.Pos == p {
			return e
		}
	}
	return nil
}

// AliveEnemyCount returns the number of enemies still standing.
func (s *State) AliveEnemyCount() int {
	count := 0
	for _, e := range s.Enemies {
		if e.IsAlive() {
			count++
		}
	}
	return count
}

// RaiseWanted adds n to the wanted level, clamped to [0, MaxWanted].
func (s *State) RaiseWanted(n int) {
	s.Wanted = min(MaxWanted, max(0, s.Wanted+n))
}

// RaiseAlert adds n to the alert level.
func (s *State) RaiseAlert(n int) {
	s.Alert += n
}

// Snapshot is a read-only copy of the state for presentation. Mutating it
// does not affect the game.
type Snapshot struct {
	Cells   [][]world.Tile
	Width   int
	Height  int
	Player  entity.Entity
	Enemies []entity.Entity // Includes dead enemies; check IsAlive before drawing
	Objects map[entity.Position]world.Object
	Exit    entity.Position
	Turn    int
	Alert   int
	Wanted  int
	Log     []string // Oldest first
}

// Snapshot copies the state for presentation.
func (s *State) Snapshot() Snapshot {
	enemies := make([]entity.Entity, len(s.Enemies))
	for i, e := range s.Enemies {
		enemies[i] = *e
	}
	objects := make(map[entity.Position]world.Object, len(s.Objects))
	for pos, obj := range s.Objects {
		objects[pos] = obj
	}

	return Snapshot{
		Cells:   s.Board.Cells(),
		Width:   s.Board.Width,
		Height:  s.Board.Height,
		Player:  *s.Player,
		Enemies: enemies,
		Objects: objects,
		Exit:    s.Exit,
		Turn:    s.Turn,
		Alert:   s.Alert,
		Wanted:  s.Wanted,
		Log:     s.Log.Entries(),
	}
}
