package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/casinobreakout/internal/entity"
	"github.com/samdwyer/casinobreakout/internal/gamedata"
	"github.com/samdwyer/casinobreakout/internal/world"
)

// quietRoll lands outside every probability band.
const quietRoll = 0.99

// scriptedRandom replays queued draws. Once a queue runs dry, Float64 returns
// quietRoll and Intn falls back to intn (or 0).
type scriptedRandom struct {
	floats     []float64
	ints       []int
	intn       func(n int) int
	floatCalls int
	intCalls   int
}

func (r *scriptedRandom) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return quietRoll
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	r.intCalls++
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v
	}
	if r.intn != nil {
		return r.intn(n)
	}
	return 0
}

// newCasinoState builds the real casino with its floor objects cleared so a
// test places exactly what it needs.
func newCasinoState(t *testing.T) *State {
	t.Helper()
	s, err := NewState(context.Background(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for pos := range s.Objects {
		delete(s.Objects, pos)
	}
	return s
}

// newArenaState builds a small custom board with the runner at start.
func newArenaState(t *testing.T, rows []string, start entity.Position, enemies ...*entity.Entity) *State {
	t.Helper()
	board, err := world.ParseBoard(rows, nil)
	require.NoError(t, err)
	player := entity.NewPlayer(&gamedata.ActorDef{
		ID: "runner", Name: "Runner", Glyph: "@", HP: 10, Stamina: 8, X: start.X, Y: start.Y,
	})
	return NewStateFrom(board, player, enemies, nil)
}

func newGuard(name string, pos entity.Position, hp, stamina int) *entity.Entity {
	return entity.NewEnemy(&gamedata.ActorDef{
		ID: "guard", Name: name, Glyph: "G", Archetype: gamedata.ArchetypeChaser,
		HP: hp, Stamina: stamina, X: pos.X, Y: pos.Y,
	})
}

var openArena = []string{
	"#####",
	"#...#",
	"#...#",
	"#...#",
	"#####",
}

func cashBundle() world.Object {
	return world.Object{Symbol: '$', Description: "Cash bundle", Effect: world.EffectCash, Value: 5}
}

func pos(x, y int) entity.Position { return entity.Position{X: x, Y: y} }
