package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonlab/pkg/engine/world"
)

func TestCellularAutomata_SmallCaveScenario(t *testing.T) {
	cfg := DefaultCellularAutomataConfig()
	cfg.WallProbability = 0.5
	cfg.Neighbors = 4
	cfg.MinCaveSize = 16
	g := NewCellularAutomata(cfg)

	for seed := int64(0); seed < 10; seed++ {
		grid, err := GenerateSeeded(g, 25, 25, seed)
		require.NoError(t, err)
		regions := FloorRegions(grid)
		assert.LessOrEqual(t, len(regions), 1, "seed %d is not connected", seed)
		for _, r := range regions {
			assert.GreaterOrEqual(t, r.Size(), cfg.MinCaveSize, "seed %d kept a small cave", seed)
		}
		assertBorderIsWall(t, grid)
	}
}

func TestCellularAutomata_CavesMeetMinimumBeforeConnecting(t *testing.T) {
	cfg := DefaultCellularAutomataConfig()
	cfg.MinCaveSize = 30
	g := NewCellularAutomata(cfg)

	for seed := int64(0); seed < 5; seed++ {
		grid, caves := g.buildCaves(60, 40, NewRand(seed))
		total := 0
		for _, c := range caves {
			assert.GreaterOrEqual(t, c.Size(), cfg.MinCaveSize)
			total += c.Size()
		}
		// Discarded caves went back to wall, so only retained caves are floor
		assert.Equal(t, total, grid.CountFloor(), "seed %d", seed)
		assert.Len(t, FloorRegions(grid), len(caves), "seed %d", seed)
	}
}

func TestCellularAutomata_ConnectCavesJoinsEverything(t *testing.T) {
	grid := world.ParseGrid(
		"####################",
		"#....#####.......###",
		"#....#####.......###",
		"####################",
		"#.....##############",
		"#.....##############",
		"####################",
	)
	caves := FloorRegions(grid)
	require.Len(t, caves, 3)

	g := NewCellularAutomata(DefaultCellularAutomataConfig())
	g.connectCaves(grid, caves, NewRand(5))
	assertConnected(t, grid)
	assertBorderIsWall(t, grid)
}

func TestCellularAutomata_AllWallRetriesThenGivesUp(t *testing.T) {
	cfg := DefaultCellularAutomataConfig()
	cfg.WallProbability = 1
	cfg.Iterations = 0
	cfg.SmoothEdges = false
	grid, err := GenerateSeeded(NewCellularAutomata(cfg), 20, 20, 1)
	require.NoError(t, err)
	assert.Zero(t, grid.CountFloor())
}
