package generator

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"dungeonlab/pkg/engine/world"
)

// RoomAdditionGenerator grows a dungeon one room at a time. Each new room is
// slid out from a wall of the existing dungeon until it has a one tile buffer
// from every floor, then joined back with a straight tunnel.
type RoomAdditionGenerator struct {
	cfg RoomAdditionConfig
}

// placedRoom is the footprint a room left on the map
type placedRoom struct {
	kind   RoomKind
	origin world.Point
	floor  mapset.Set[world.Point]
}

// crowds reports whether any floor cell of r is within one tile of o's floor
func (r placedRoom) crowds(o placedRoom) bool {
	found := false
	r.floor.Each(func(p world.Point) {
		for dy := -1; dy <= 1 && !found; dy++ {
			for dx := -1; dx <= 1 && !found; dx++ {
				found = o.floor.Has(p.Add(world.Pt(dx, dy)))
			}
		}
	})
	return found
}

// NewRoomAddition creates a room addition generator
func NewRoomAddition(cfg RoomAdditionConfig) *RoomAdditionGenerator {
	return &RoomAdditionGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *RoomAdditionGenerator) Name() string {
	return gotext.Get("Room Addition")
}

// Generate creates a new grid of attached rooms
func (g *RoomAdditionGenerator) Generate(width, height int, rng *rand.Rand) (*world.Grid, error) {
	grid, _, err := g.generate(width, height, rng)
	return grid, err
}

func (g *RoomAdditionGenerator) generate(width, height int, rng *rand.Rand) (*world.Grid, []placedRoom, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	minSide := g.cfg.SquareRoomMaxSize + 2
	if err := checkDimensions(g.Name(), width, height, minSide, minSide); err != nil {
		return nil, nil, err
	}
	rng = ensureRand(rng)

	grid := world.NewGrid(width, height)
	var rooms []placedRoom

	first := g.firstRoom(width, height, rng)
	origin := world.Pt((width-first.Width())/2, (height-first.Height())/2)
	rooms = append(rooms, addRoom(grid, first, origin))

	for iter := 0; iter < g.cfg.BuildRoomAttempts; iter++ {
		if len(rooms) >= g.cfg.MaxRooms {
			break
		}
		room := g.nextRoom(rng)
		p, ok := g.placeRoom(grid, room, rng)
		if !ok {
			continue
		}
		rooms = append(rooms, addRoom(grid, room, p.origin))
		addTunnel(grid, p.wallTile, p.direction, p.tunnelLength)
	}

	if g.cfg.IncludeShortcuts {
		g.addShortcuts(grid, rng)
	}

	return grid, rooms, nil
}

// firstRoom is a cavern by chance when it fits the map, otherwise a square room
func (g *RoomAdditionGenerator) firstRoom(width, height int, rng *rand.Rand) *Room {
	if rng.Float64() < g.cfg.CavernChance && g.cfg.CavernMaxSize <= min(width, height) {
		return blobRoom(CavernRoom, g.cfg.CavernMaxSize, g.cfg, rng)
	}
	return squareRoom(g.cfg, rng)
}

// nextRoom picks a square, cross or blob room by weighted chance
func (g *RoomAdditionGenerator) nextRoom(rng *rand.Rand) *Room {
	choice := rng.Float64()
	switch {
	case choice < g.cfg.SquareRoomChance:
		return squareRoom(g.cfg, rng)
	case choice < g.cfg.SquareRoomChance+g.cfg.CrossRoomChance:
		return crossRoom(g.cfg, rng)
	default:
		return blobRoom(CellularBlobRoom, g.cfg.BlobMaxSize, g.cfg, rng)
	}
}

// placement is where placeRoom found space for a room
type placement struct {
	origin       world.Point
	wallTile     world.Point
	direction    world.Direction
	tunnelLength int
}

// placeRoom looks for a doorway on the existing dungeon and slides the room
// away from it until it no longer crowds any floor
func (g *RoomAdditionGenerator) placeRoom(grid *world.Grid, room *Room, rng *rand.Rand) (placement, bool) {
	footprint := room.Footprint()
	if len(footprint) == 0 {
		return placement{}, false
	}

	for iter := 0; iter < g.cfg.PlaceRoomAttempts; iter++ {
		dir := world.AllDirections()[rng.Intn(4)]
		wallTile, ok := findDoorway(grid, dir, rng)
		if !ok {
			continue
		}

		// Anchor a random floor cell of the room on the doorway
		anchor := footprint[rng.Intn(len(footprint))]
		start := wallTile.Sub(anchor)

		for tunnelLength := 0; tunnelLength < g.cfg.MaxTunnelLength; tunnelLength++ {
			origin := start.Add(dir.Vector().Mul(tunnelLength))
			if roomFits(grid, footprint, origin) {
				return placement{origin: origin, wallTile: wallTile, direction: dir, tunnelLength: tunnelLength}, true
			}
		}
	}
	return placement{}, false
}

// findDoorway samples the map for a wall with wall beyond it in dir and floor behind it
func findDoorway(grid *world.Grid, dir world.Direction, rng *rand.Rand) (world.Point, bool) {
	width, height := grid.Width(), grid.Height()
	for iter := 0; iter < width*height; iter++ {
		t := world.Pt(randInt(rng, 1, width-2), randInt(rng, 1, height-2))
		ahead := t.Step(dir)
		behind := t.Step(dir.Opposite())
		if grid.IsWall(t.X, t.Y) && grid.IsWall(ahead.X, ahead.Y) && grid.IsFloor(behind.X, behind.Y) {
			return t, true
		}
	}
	return world.Point{}, false
}

// roomFits reports whether every floor cell of the room lands inside the border
// with no floor in the 3x3 block around it
func roomFits(grid *world.Grid, footprint []world.Point, origin world.Point) bool {
	for _, p := range footprint {
		q := origin.Add(p)
		if !grid.IsPlayablePosition(q.X, q.Y) {
			return false
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if grid.IsFloor(q.X+dx, q.Y+dy) {
					return false
				}
			}
		}
	}
	return true
}

// addRoom carves the room's floor at origin and returns its footprint on the map
func addRoom(grid *world.Grid, room *Room, origin world.Point) placedRoom {
	placed := placedRoom{kind: room.Kind, origin: origin, floor: mapset.New[world.Point]()}
	for _, p := range room.Footprint() {
		q := origin.Add(p)
		grid.Carve(q.X, q.Y)
		placed.floor.Put(q)
	}
	return placed
}

// addTunnel carves from the doorway out to the room cell anchored tunnelLength steps away
func addTunnel(grid *world.Grid, wallTile world.Point, dir world.Direction, tunnelLength int) {
	for i := 0; i <= tunnelLength; i++ {
		p := wallTile.Add(dir.Vector().Mul(i))
		grid.Carve(p.X, p.Y)
	}
}
