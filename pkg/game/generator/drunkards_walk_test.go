package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrunkardsWalk_StopsAtFloorGoal(t *testing.T) {
	cfg := DefaultDrunkardsWalkConfig()
	cfg.PercentGoal = 0.25
	g := NewDrunkardsWalk(cfg)

	for seed := int64(0); seed < 5; seed++ {
		grid, err := GenerateSeeded(g, 60, 40, seed)
		require.NoError(t, err)
		assert.Equal(t, 600, grid.CountFloor(), "seed %d", seed)
		assertBorderIsWall(t, grid)
		assertConnected(t, grid)
	}
}

func TestDrunkardsWalk_DefaultReachesGoal(t *testing.T) {
	g := NewDrunkardsWalk(DefaultDrunkardsWalkConfig())
	grid, err := GenerateSeeded(g, 80, 50, 21)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, float64(grid.CountFloor()), 0.4*80*50)
}

func TestDrunkardsWalk_TinyMapStopsAtIterationCap(t *testing.T) {
	cfg := DefaultDrunkardsWalkConfig()
	cfg.WalkIterations = 0
	grid, err := GenerateSeeded(NewDrunkardsWalk(cfg), 4, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, grid.CountFloor())
	assertBorderIsWall(t, grid)
}
