package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/casinobreakout/internal/entity"
	"github.com/samdwyer/casinobreakout/internal/gamedata"
)

var (
	// ErrEmptyLayout is returned for a layout without rows.
	ErrEmptyLayout = errors.New("layout has no rows")
	// ErrRaggedLayout is returned when layout rows differ in width.
	ErrRaggedLayout = errors.New("layout rows differ in width")
	// ErrUnknownGlyph is returned for a layout glyph that is neither a tile nor a pickup.
	ErrUnknownGlyph = errors.New("unknown layout glyph")
	// ErrBlockedExit is returned when the exit cell is a wall.
	ErrBlockedExit = errors.New("exit is a wall")
)

// Board is the fixed wall/floor grid of the casino.
type Board struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// ParseBoard builds a board from layout rows. Besides walls and floor, any
// glyph the catalog knows as a placed pickup is accepted and kept in the grid
// until PopulateObjects moves it into the object layer.
func ParseBoard(rows []string, catalog *gamedata.PickupCatalog) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	width := len([]rune(rows[0]))
	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", y, len(runes), width, ErrRaggedLayout)
		}
		tiles[y] = make([]Tile, width)
		for x, r := range runes {
			switch {
			case Tile(r) == TileWall, Tile(r) == TileFloor:
			case catalog != nil && catalog.ByGlyph(r) != nil:
			default:
				return nil, fmt.Errorf("glyph %q at (%d,%d): %w", r, x, y, ErrUnknownGlyph)
			}
			tiles[y][x] = Tile(r)
		}
	}

	b := &Board{Width: width, Height: len(rows), Tiles: tiles}
	if !b.IsPassable(b.Exit()) {
		return nil, fmt.Errorf("exit %v: %w", b.Exit(), ErrBlockedExit)
	}
	return b, nil
}

// Exit returns the exit cell, one step in from the bottom-right corner.
func (b *Board) Exit() entity.Position {
	return entity.Position{X: b.Width - 2, Y: b.Height - 2}
}

// InBounds returns true if the position lies on the board.
func (b *Board) InBounds(p entity.Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// IsPassable returns true if the given position can be walked on.
func (b *Board) IsPassable(p entity.Position) bool {
	if !b.InBounds(p) {
		return false
	}
	return b.Tiles[p.Y][p.X].IsPassable()
}

// GetTile returns the tile at the given position. Out-of-bounds cells read as walls.
func (b *Board) GetTile(p entity.Position) Tile {
	if !b.InBounds(p) {
		return TileWall
	}
	return b.Tiles[p.Y][p.X]
}

// Cells returns a copy of the tile grid.
func (b *Board) Cells() [][]Tile {
	cells := make([][]Tile, len(b.Tiles))
	for y := range b.Tiles {
		cells[y] = append([]Tile(nil), b.Tiles[y]...)
	}
	return cells
}
