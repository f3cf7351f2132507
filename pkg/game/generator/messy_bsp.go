package generator

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"dungeonlab/pkg/engine/world"
)

// MessyBSPGenerator is a BSP tree whose halls are goal-seeking random walks.
// The result is smoothed so rooms and halls blend into each other.
type MessyBSPGenerator struct {
	cfg MessyBSPConfig
}

// NewMessyBSP creates a messy BSP generator
func NewMessyBSP(cfg MessyBSPConfig) *MessyBSPGenerator {
	return &MessyBSPGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *MessyBSPGenerator) Name() string {
	return gotext.Get("Messy BSP Tree")
}

// Generate creates a new grid of rooms joined by wandering halls
func (g *MessyBSPGenerator) Generate(width, height int, rng *rand.Rand) (*world.Grid, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	leafSize := g.cfg.Partition.MinLeafSize
	if err := checkDimensions(g.Name(), width, height, leafSize, leafSize); err != nil {
		return nil, err
	}
	rng = ensureRand(rng)

	grid := world.NewGrid(width, height)
	tree := newPartitionTree(0, 0, width, height, g.cfg.Partition)
	tree.split(rng)
	tree.createRooms(0, grid, drunkenCarver{}, rng)
	g.cleanUp(grid)

	return grid, nil
}

// cleanUp smooths wall spurs into floor and fills floor nubs back into wall
func (g *MessyBSPGenerator) cleanUp(grid *world.Grid) {
	if !g.cfg.SmoothEdges {
		return
	}
	for iter := 0; iter < g.cfg.Passes; iter++ {
		for x := 1; x < grid.Width()-1; x++ {
			for y := 1; y < grid.Height()-1; y++ {
				if grid.IsWall(x, y) && grid.CountCardinalWalls(x, y) <= g.cfg.Smoothing {
					grid.Carve(x, y)
				}
				if grid.IsFloor(x, y) && grid.CountCardinalWalls(x, y) >= g.cfg.Filling {
					grid.Set(x, y, world.Wall)
				}
			}
		}
	}
}

// drunkenCarver carves plain rooms and replaces corridors with a walk
// from the second room's center into the first room
type drunkenCarver struct{}

func (drunkenCarver) carveRoom(grid *world.Grid, room world.Rect) {
	carveRect(grid, room)
}

func (drunkenCarver) carveHall(grid *world.Grid, from, to world.Rect, rng *rand.Rand) {
	goal := from.CenterPoint()
	w := newWalker(grid, to.CenterPoint())
	w.seek(goal, 1)
	inside := func(p world.Point) bool {
		return from.X1 < p.X && p.X < from.X2 && from.Y1 < p.Y && p.Y < from.Y2
	}
	if !w.walkUntil(rng, goalWalkLimit(grid), inside) {
		carveLCorridor(grid, w.pos, goal, rng)
	}
}
