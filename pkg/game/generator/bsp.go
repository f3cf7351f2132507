package generator

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"dungeonlab/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct {
	cfg PartitionConfig
}

// NewBSP creates a BSP rooms-and-halls generator
func NewBSP(cfg PartitionConfig) *BSPGenerator {
	return &BSPGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return gotext.Get("BSP Tree")
}

// Generate creates a new grid using BSP algorithm
func (g *BSPGenerator) Generate(width, height int, rng *rand.Rand) (*world.Grid, error) {
	grid, _, err := g.generate(width, height, rng)
	return grid, err
}

func (g *BSPGenerator) generate(width, height int, rng *rand.Rand) (*world.Grid, *partitionTree, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if err := checkDimensions(g.Name(), width, height, g.cfg.MinLeafSize, g.cfg.MinLeafSize); err != nil {
		return nil, nil, err
	}
	rng = ensureRand(rng)

	grid := world.NewGrid(width, height)
	tree := newPartitionTree(0, 0, width, height, g.cfg)
	tree.split(rng)
	tree.createRooms(0, grid, corridorCarver{}, rng)

	return grid, tree, nil
}

// corridorCarver carves hollow rooms joined by straight L-shaped corridors
type corridorCarver struct{}

func (corridorCarver) carveRoom(grid *world.Grid, room world.Rect) {
	carveRect(grid, room)
}

func (corridorCarver) carveHall(grid *world.Grid, from, to world.Rect, rng *rand.Rand) {
	carveLCorridor(grid, from.CenterPoint(), to.CenterPoint(), rng)
}
