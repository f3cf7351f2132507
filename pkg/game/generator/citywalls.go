package generator

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"dungeonlab/pkg/engine/world"
)

// CityWallsGenerator partitions an open courtyard into walled buildings,
// each with a single door. The streets between buildings are the floor.
type CityWallsGenerator struct {
	cfg PartitionConfig
}

// NewCityWalls creates a city walls generator
func NewCityWalls(cfg PartitionConfig) *CityWallsGenerator {
	return &CityWallsGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *CityWallsGenerator) Name() string {
	return gotext.Get("City Walls")
}

// Generate creates a new grid of walled buildings
func (g *CityWallsGenerator) Generate(width, height int, rng *rand.Rand) (*world.Grid, error) {
	// Buildings need a one tile wall ring around a floor at least 1 tile wide
	if err := g.cfg.validate(5); err != nil {
		return nil, err
	}
	minSide := g.cfg.MinLeafSize + 2
	if err := checkDimensions(g.Name(), width, height, minSide, minSide); err != nil {
		return nil, err
	}
	rng = ensureRand(rng)

	grid := world.NewGrid(width, height)
	grid.Fill(world.Floor)

	// Partition inside the outer wall so every door opens onto a street
	tree := newPartitionTree(1, 1, width-2, height-2, g.cfg)
	tree.split(rng)
	tree.createRooms(0, grid, buildingCarver{}, rng)

	for _, room := range tree.rooms() {
		openDoor(grid, room, world.AllDirections()[rng.Intn(4)])
	}

	grid.FillBorder(world.Wall)
	return grid, nil
}

// buildingCarver draws a room as a wall ring with floor inside; halls are streets already
type buildingCarver struct{}

func (buildingCarver) carveRoom(grid *world.Grid, room world.Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			grid.Set(x, y, world.Wall)
		}
	}
	for y := room.Y1 + 2; y < room.Y2-1; y++ {
		for x := room.X1 + 2; x < room.X2-1; x++ {
			grid.Carve(x, y)
		}
	}
}

func (buildingCarver) carveHall(*world.Grid, world.Rect, world.Rect, *rand.Rand) {}

// openDoor carves one door in the middle of the given side of a building
func openDoor(grid *world.Grid, room world.Rect, side world.Direction) {
	cx, cy := room.Center()
	switch side {
	case world.North:
		grid.Carve(cx, room.Y1+1)
	case world.South:
		grid.Carve(cx, room.Y2-1)
	case world.East:
		grid.Carve(room.X2-1, cy)
	case world.West:
		grid.Carve(room.X1+1, cy)
	}
}
