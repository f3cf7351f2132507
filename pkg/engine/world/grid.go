// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

import (
	"strings"
)

// Tile is the content of a single grid cell
type Tile uint8

// Tile values
const (
	Wall Tile = iota
	Floor
)

// String returns the map glyph for a tile
func (t Tile) String() string {
	if t == Floor {
		return "."
	}
	return "#"
}

// Grid represents a dungeon map as a dense width x height tile buffer.
// Dimensions are fixed once the grid is built.
type Grid struct {
	tiles  []Tile
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, filled with walls
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.tiles = make([]Tile, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
// This ensures a 1-cell wall border around the entire map
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsPlayablePosition(x, y)
}

// Cell returns the tile at the given position. Out of bounds reads as Wall.
func (g *Grid) Cell(x, y int) Tile {
	if !g.IsValidPosition(x, y) {
		return Wall
	}
	return g.tiles[y*g.width+x]
}

// At returns the tile at p
func (g *Grid) At(p Point) Tile {
	return g.Cell(p.X, p.Y)
}

// IsFloor reports whether the cell at x/y is a floor tile
func (g *Grid) IsFloor(x, y int) bool {
	return g.Cell(x, y) == Floor
}

// IsWall reports whether the cell at x/y is a wall tile (out of bounds counts as wall)
func (g *Grid) IsWall(x, y int) bool {
	return g.Cell(x, y) == Wall
}

// Set stores a tile at the given position. Returns false if out of bounds.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.tiles[y*g.width+x] = t
	return true
}

// Carve marks the cell at x/y as floor. Returns false if out of bounds.
func (g *Grid) Carve(x, y int) bool {
	return g.Set(x, y, Floor)
}

// Fill overwrites every cell with t
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// FillBorder overwrites the outermost ring of cells with t
func (g *Grid) FillBorder(t Tile) {
	for x := 0; x < g.width; x++ {
		g.Set(x, 0, t)
		g.Set(x, g.height-1, t)
	}
	for y := 0; y < g.height; y++ {
		g.Set(0, y, t)
		g.Set(g.width-1, y, t)
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[y*g.width+x])
		}
	}
}

// CountFloor returns the number of floor tiles in the grid
func (g *Grid) CountFloor() int {
	n := 0
	for _, t := range g.tiles {
		if t == Floor {
			n++
		}
	}
	return n
}

// CountCardinalWalls counts walls among the four orthogonal neighbours of x/y
func (g *Grid) CountCardinalWalls(x, y int) int {
	count := 0
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		if g.IsWall(x+dx, y+dy) {
			count++
		}
	}
	return count
}

// CountAdjacentWalls counts walls among the eight neighbours of x/y.
// Positions off the map count as walls.
func (g *Grid) CountAdjacentWalls(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsWall(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// Equal reports whether two grids have the same dimensions and tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, t := range g.tiles {
		if other.tiles[i] != t {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for walls and '.' for floors, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteString(g.Cell(x, y).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from rows of '#' (wall) and anything else (floor).
// All rows must have the same length.
func ParseGrid(rows ...string) *Grid {
	if len(rows) == 0 {
		panic("Grid dimensions must be positive")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			panic("ParseGrid: ragged rows")
		}
		for x, ch := range row {
			if ch != '#' {
				g.Carve(x, y)
			}
		}
	}
	return g
}
