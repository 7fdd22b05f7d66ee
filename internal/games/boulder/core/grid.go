package core

import (
	"fmt"
	"strings"
)

// Grid represents the game board as a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Tiles []Tile // Flat array of tiles, length W*H
}

// NewGrid creates a new grid with all cells set to air.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
}

// Decode builds a grid from rows of level codes, top row first.
// Rows must all have the same length. An unknown code aborts decoding.
func Decode(rows [][]RawTile) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}

	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", y, len(row), w)
		}
		for x, code := range row {
			t, err := DecodeTile(code)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", C(x, y), err)
			}
			g.Tiles[g.index(C(x, y))] = t
		}
	}
	return g, nil
}

// MustDecode is like Decode but panics on malformed input.
// Intended for grid literals in tests and fixtures.
func MustDecode(rows [][]RawTile) *Grid {
	g, err := Decode(rows)
	if err != nil {
		panic("core: " + err.Error())
	}
	return g
}

// Encode returns the level codes for the grid, top row first.
func (g *Grid) Encode() ([][]RawTile, error) {
	rows := make([][]RawTile, g.H)
	for y := 0; y < g.H; y++ {
		rows[y] = make([]RawTile, g.W)
		for x := 0; x < g.W; x++ {
			t := g.Get(C(x, y))
			code, ok := t.Code()
			if !ok {
				return nil, fmt.Errorf("cell %s: no code for %s", C(x, y), t)
			}
			rows[y][x] = code
		}
	}
	return rows, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the tile at the given coordinate.
// Out-of-bounds cells read as unbreakable so the map edge behaves like a wall.
func (g *Grid) Get(c Coord) Tile {
	if !g.InBounds(c) {
		return Unbreakable()
	}
	return g.Tiles[g.index(c)]
}

// Set replaces the tile at the given coordinate.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.Tiles[g.index(c)] = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Tiles: tiles,
	}
}

// Find returns every coordinate whose tile satisfies match, in row order.
func (g *Grid) Find(match func(Tile) bool) []Coord {
	var coords []Coord
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if match(g.Get(c)) {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

// Count returns the number of tiles of the given kind.
func (g *Grid) Count(k Kind) int {
	count := 0
	for _, t := range g.Tiles {
		if t.Kind == k {
			count++
		}
	}
	return count
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.Tiles {
		if t != other.Tiles[i] {
			return false
		}
	}
	return true
}

// String renders the grid as ASCII, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.W*g.H + g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.Get(C(x, y)).Char())
		}
	}
	return sb.String()
}
