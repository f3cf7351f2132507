package generator

import (
	"math/rand"

	"dungeonlab/pkg/engine/world"
)

// RoomKind tags the shape of a room built by the room addition generator
type RoomKind int

// Room shapes
const (
	SquareRoom RoomKind = iota
	CrossRoom
	CellularBlobRoom
	CavernRoom
)

// String returns the display name of a room kind
func (k RoomKind) String() string {
	switch k {
	case SquareRoom:
		return "Square"
	case CrossRoom:
		return "Cross"
	case CellularBlobRoom:
		return "Cellular Blob"
	case CavernRoom:
		return "Cavern"
	default:
		return "Unknown"
	}
}

// maxBlobAttempts bounds the regeneration of automaton rooms that come out empty
const maxBlobAttempts = 100

// Room is a candidate room: a small grid of its own, positioned by its top-left corner when carved
type Room struct {
	Kind  RoomKind
	cells *world.Grid
}

// Width returns the width of the room's bounding box
func (r *Room) Width() int {
	return r.cells.Width()
}

// Height returns the height of the room's bounding box
func (r *Room) Height() int {
	return r.cells.Height()
}

// IsFloor reports whether the room cell at x/y is floor
func (r *Room) IsFloor(x, y int) bool {
	return r.cells.IsFloor(x, y)
}

// Footprint returns the room's floor cells relative to its top-left corner
func (r *Room) Footprint() []world.Point {
	var out []world.Point
	r.cells.ForEachCell(func(x, y int, t world.Tile) {
		if t == world.Floor {
			out = append(out, world.Pt(x, y))
		}
	})
	return out
}

// squareRoom builds an all-floor rectangle whose aspect ratio stays within 1:1.5
func squareRoom(cfg RoomAdditionConfig, rng *rand.Rand) *Room {
	w := randInt(rng, cfg.SquareRoomMinSize, cfg.SquareRoomMaxSize)
	h := randInt(rng, max(w/2, cfg.SquareRoomMinSize), min(w*3/2, cfg.SquareRoomMaxSize))

	// The outer ring of the box is the room's wall, which the map already provides
	cells := world.NewGrid(w-2, h-2)
	cells.Fill(world.Floor)
	return &Room{Kind: SquareRoom, cells: cells}
}

// crossRoom builds a plus shape from a horizontal and a vertical band centred in one box
func crossRoom(cfg RoomAdditionConfig, rng *rand.Rand) *Room {
	horWidth := randInt(rng, cfg.CrossRoomMinSize+2, cfg.CrossRoomMaxSize)
	virHeight := randInt(rng, cfg.CrossRoomMinSize+2, cfg.CrossRoomMaxSize)
	horHeight := randInt(rng, cfg.CrossRoomMinSize, virHeight-2)
	virWidth := randInt(rng, cfg.CrossRoomMinSize, horWidth-2)

	cells := world.NewGrid(horWidth, virHeight)

	virOffset := (virHeight - horHeight) / 2
	for y := virOffset; y < virOffset+horHeight; y++ {
		for x := 0; x < horWidth; x++ {
			cells.Carve(x, y)
		}
	}

	horOffset := (horWidth - virWidth) / 2
	for y := 0; y < virHeight; y++ {
		for x := horOffset; x < horOffset+virWidth; x++ {
			cells.Carve(x, y)
		}
	}

	return &Room{Kind: CrossRoom, cells: cells}
}

// blobRoom grows an organic room with an automaton in a size x size box and keeps
// its largest region. Boxes that end up with no region big enough are regrown.
func blobRoom(kind RoomKind, size int, cfg RoomAdditionConfig, rng *rand.Rand) *Room {
	for iter := 0; iter < maxBlobAttempts; iter++ {
		cells := world.NewGrid(size, size)

		for y := 2; y < size-2; y++ {
			for x := 2; x < size-2; x++ {
				if rng.Float64() >= cfg.WallProbability {
					cells.Carve(x, y)
				}
			}
		}

		for iter := 0; iter < 4; iter++ {
			for y := 1; y < size-1; y++ {
				for x := 1; x < size-1; x++ {
					walls := cells.CountAdjacentWalls(x, y)
					if walls > cfg.Neighbors {
						cells.Set(x, y, world.Wall)
					} else if walls < cfg.Neighbors {
						cells.Carve(x, y)
					}
				}
			}
		}

		if keepLargestRegion(cells, cfg.MinRoomTiles) {
			return &Room{Kind: kind, cells: cells}
		}
	}
	return squareRoom(cfg, rng)
}

// keepLargestRegion fills every region except the largest one of at least minTiles.
// It returns false, leaving the grid solid, when no region is large enough.
func keepLargestRegion(cells *world.Grid, minTiles int) bool {
	var largest *Region
	for _, r := range FloorRegions(cells) {
		if r.Size() >= minTiles && (largest == nil || r.Size() > largest.Size()) {
			largest = r
		}
	}

	cells.Fill(world.Wall)
	if largest == nil {
		return false
	}
	for _, p := range largest.Points {
		cells.Carve(p.X, p.Y)
	}
	return true
}
