package generator

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"dungeonlab/pkg/engine/world"
)

// maxCaveAttempts is how many times the whole cave pipeline reruns when no cave survives
const maxCaveAttempts = 10

// CellularAutomataGenerator grows caves with a sampled automaton rule, drops
// caves below the minimum size and tunnels the rest together
type CellularAutomataGenerator struct {
	cfg CellularAutomataConfig
}

// NewCellularAutomata creates a cave generator
func NewCellularAutomata(cfg CellularAutomataConfig) *CellularAutomataGenerator {
	return &CellularAutomataGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *CellularAutomataGenerator) Name() string {
	return gotext.Get("Cellular Automata")
}

// Generate creates a connected cave system
func (g *CellularAutomataGenerator) Generate(width, height int, rng *rand.Rand) (*world.Grid, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkDimensions(g.Name(), width, height, 3, 3); err != nil {
		return nil, err
	}
	rng = ensureRand(rng)

	var grid *world.Grid
	for iter := 0; iter < maxCaveAttempts; iter++ {
		var caves []*Region
		grid, caves = g.buildCaves(width, height, rng)
		if len(caves) == 0 {
			continue
		}
		g.connectCaves(grid, caves, rng)
		g.smooth(grid)
		break
	}
	return grid, nil
}

// buildCaves runs the fill, automaton and smoothing steps and then keeps only
// caves of at least MinCaveSize cells
func (g *CellularAutomataGenerator) buildCaves(width, height int, rng *rand.Rand) (*world.Grid, []*Region) {
	grid := world.NewGrid(width, height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if rng.Float64() >= g.cfg.WallProbability {
				grid.Carve(x, y)
			}
		}
	}

	for iter := 0; iter < g.cfg.Iterations; iter++ {
		x := randInt(rng, 1, width-2)
		y := randInt(rng, 1, height-2)
		walls := grid.CountAdjacentWalls(x, y)
		if walls > g.cfg.Neighbors {
			grid.Set(x, y, world.Wall)
		} else if walls < g.cfg.Neighbors {
			grid.Carve(x, y)
		}
	}

	g.smooth(grid)

	var caves []*Region
	for _, r := range FloorRegions(grid) {
		if r.Size() >= g.cfg.MinCaveSize {
			caves = append(caves, r)
			continue
		}
		for _, p := range r.Points {
			grid.Set(p.X, p.Y, world.Wall)
		}
	}
	return grid, caves
}

// smooth removes thin wall spurs: a wall with at most Smoothing wall neighbours becomes floor
func (g *CellularAutomataGenerator) smooth(grid *world.Grid) {
	if !g.cfg.SmoothEdges {
		return
	}
	for iter := 0; iter < 5; iter++ {
		for x := 1; x < grid.Width()-1; x++ {
			for y := 1; y < grid.Height()-1; y++ {
				if grid.IsWall(x, y) && grid.CountCardinalWalls(x, y) <= g.cfg.Smoothing {
					grid.Carve(x, y)
				}
			}
		}
	}
}

// connectCaves tunnels each cave to its nearest cave that floor does not already reach
func (g *CellularAutomataGenerator) connectCaves(grid *world.Grid, caves []*Region, rng *rand.Rand) {
	for i, cave := range caves {
		j := nearestUnconnected(grid, caves, i)
		if j < 0 {
			continue
		}
		digTunnel(grid, caves[j].Representative(), cave, rng)
	}
}

// digTunnel walks from start toward target's representative, carving, until it is inside target
func digTunnel(grid *world.Grid, start world.Point, target *Region, rng *rand.Rand) {
	goal := target.Representative()
	w := newWalker(grid, start)
	w.seek(goal, 1)
	if !w.walkUntil(rng, goalWalkLimit(grid), target.Contains) {
		carveLCorridor(grid, w.pos, goal, rng)
	}
}
