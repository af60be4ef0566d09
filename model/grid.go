package model

import (
	"errors"
	"fmt"
	"strings"
)

// Tile is what a grid cell is made of.
type Tile int

const (
	TileOpen Tile = iota
	TileWall
	TileDoor
)

var (
	// ErrOutOfRange indicates a grid query outside the board bounds.
	ErrOutOfRange = errors.New("model: cell out of range")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("model: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("model: all grid rows must have the same length")
	// ErrDoorCount indicates the grid does not contain exactly one door.
	ErrDoorCount = errors.New("model: grid must contain exactly one door")
)

// neighborOffsets is the fixed neighbor visit order: up, down, left, right.
// Pathfinding tie-breaks depend on it, keep it stable.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is the static level layout. Immutable once built; a level shares
// one Grid between the player, all robots and the pathfinder.
type Grid struct {
	tiles [][]Tile
	door  Cell
}

// NewGrid builds a Grid from a rectangular tile matrix. The input is
// deep-copied. Exactly one TileDoor must be present.
func NewGrid(tiles [][]Tile) (*Grid, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(tiles[0])
	doors := 0
	door := Cell{}
	copied := make([][]Tile, len(tiles))
	for r, row := range tiles {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copied[r] = make([]Tile, w)
		copy(copied[r], row)
		for c, t := range row {
			if t == TileDoor {
				doors++
				door = Cell{Row: r, Col: c}
			}
		}
	}
	if doors != 1 {
		return nil, fmt.Errorf("%w, got %d", ErrDoorCount, doors)
	}
	return &Grid{tiles: copied, door: door}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.tiles) }

// Width returns the number of columns.
func (g *Grid) Width() int { return len(g.tiles[0]) }

// Door returns the single door cell.
func (g *Grid) Door() Cell { return g.door }

// InBounds reports whether c lies on the board.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height() && c.Col >= 0 && c.Col < g.Width()
}

// Tile returns the tile at c, or ErrOutOfRange.
func (g *Grid) Tile(c Cell) (Tile, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, c.Row, c.Col)
	}
	return g.tiles[c.Row][c.Col], nil
}

// IsWalkable reports whether c is an in-bounds open or door cell.
func (g *Grid) IsWalkable(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.tiles[c.Row][c.Col] != TileWall
}

// Neighbors returns the walkable orthogonal neighbors of c in the fixed
// order up, down, left, right. Returns ErrOutOfRange for an off-board c.
func (g *Grid) Neighbors(c Cell) ([]Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, c.Row, c.Col)
	}
	result := make([]Cell, 0, 4)
	for _, off := range neighborOffsets {
		n := Cell{Row: c.Row + off[0], Col: c.Col + off[1]}
		if g.IsWalkable(n) {
			result = append(result, n)
		}
	}
	return result, nil
}

// String renders the layout, walls as '#', the door as 'D'.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.tiles {
		for _, t := range row {
			switch t {
			case TileWall:
				b.WriteByte('#')
			case TileDoor:
				b.WriteByte('D')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
