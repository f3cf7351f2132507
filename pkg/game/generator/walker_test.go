package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonlab/pkg/engine/world"
)

func TestWalker_NeverTouchesBorder(t *testing.T) {
	grid := world.NewGrid(12, 9)
	w := newWalker(grid, world.Pt(6, 4))
	w.previousBias = 0.7
	rng := NewRand(11)
	for iter := 0; iter < 5000; iter++ {
		w.step(rng)
		require.True(t, grid.IsPlayablePosition(w.pos.X, w.pos.Y), "walker left the playable area at %v", w.pos)
	}
	assertBorderIsWall(t, grid)
	assertConnected(t, grid)
}

func TestWalker_Weights(t *testing.T) {
	grid := world.NewGrid(40, 40)

	w := newWalker(grid, world.Pt(2, 2))
	w.centerBias = 0.5
	assert.Equal(t, [4]float64{1, 1.5, 1.5, 1}, w.weights(), "top-left corner pulls south and east")

	w.pos = world.Pt(20, 20)
	assert.Equal(t, [4]float64{1, 1, 1, 1}, w.weights(), "no center pull in the middle")

	w.prev = world.West
	w.previousBias = 2
	assert.Equal(t, [4]float64{1, 1, 1, 3}, w.weights())

	w.prev = world.NoDirection
	w.seek(world.Pt(10, 30), 1)
	assert.Equal(t, [4]float64{1, 2, 1, 2}, w.weights())
}

func TestWalker_SkippedStepClearsHistory(t *testing.T) {
	grid := world.NewGrid(3, 3)
	w := newWalker(grid, world.Pt(1, 1))
	w.prev = world.East
	w.previousBias = 10
	// Every neighbour of the only playable cell is border
	assert.False(t, w.step(NewRand(1)))
	assert.Equal(t, world.Pt(1, 1), w.pos)
	assert.Equal(t, world.NoDirection, w.prev)
}

func TestWalker_GoalWalkArrives(t *testing.T) {
	grid := world.NewGrid(30, 20)
	start, goal := world.Pt(2, 2), world.Pt(26, 16)
	grid.Carve(start.X, start.Y)

	w := newWalker(grid, start)
	w.seek(goal, 1)
	arrived := w.walkUntil(NewRand(3), goalWalkLimit(grid), func(p world.Point) bool {
		return p == goal
	})
	require.True(t, arrived)
	assert.True(t, grid.IsFloor(goal.X, goal.Y))
	assert.True(t, connected(grid, start, goal))
}
