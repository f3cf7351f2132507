package generator

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"dungeonlab/pkg/engine/world"
)

// DrunkardsWalkGenerator carves a cave with one long biased random walk
type DrunkardsWalkGenerator struct {
	cfg DrunkardsWalkConfig
}

// NewDrunkardsWalk creates a drunkard's walk generator
func NewDrunkardsWalk(cfg DrunkardsWalkConfig) *DrunkardsWalkGenerator {
	return &DrunkardsWalkGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *DrunkardsWalkGenerator) Name() string {
	return gotext.Get("Drunkard's Walk")
}

// Generate walks until the floor goal or the iteration cap is reached
func (g *DrunkardsWalkGenerator) Generate(width, height int, rng *rand.Rand) (*world.Grid, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkDimensions(g.Name(), width, height, 4, 4); err != nil {
		return nil, err
	}
	rng = ensureRand(rng)

	grid := world.NewGrid(width, height)
	iterations := max(g.cfg.WalkIterations, width*height*10)
	filledGoal := float64(width*height) * g.cfg.PercentGoal

	start := world.Pt(randInt(rng, 2, width-2), randInt(rng, 2, height-2))
	w := newWalker(grid, start)
	w.centerBias = g.cfg.WeightTowardCenter
	w.previousBias = g.cfg.WeightTowardPrevious

	grid.Carve(start.X, start.Y)
	filled := 1
	for iter := 0; iter < iterations; iter++ {
		if w.step(rng) {
			filled++
		}
		if float64(filled) >= filledGoal {
			break
		}
	}

	return grid, nil
}
