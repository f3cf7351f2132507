package generator

import (
	"math/rand"

	"dungeonlab/pkg/engine/world"
)

// walkOrder is the order direction weights are laid out on [0,1)
var walkOrder = [4]world.Direction{world.North, world.South, world.East, world.West}

// walker is a directionally weighted random walk that carves floor as it moves.
// It never steps onto the outermost ring of the grid.
type walker struct {
	grid *world.Grid
	pos  world.Point
	prev world.Direction

	// centerBias is added toward the middle when the walker is in an outer quarter
	centerBias float64
	// previousBias is added toward the last committed direction
	previousBias float64
	// goalBias is added toward goal when hasGoal is set
	goalBias float64
	goal     world.Point
	hasGoal  bool
}

func newWalker(grid *world.Grid, start world.Point) *walker {
	return &walker{grid: grid, pos: start, prev: world.NoDirection}
}

// seek points the walker at goal with the given weight
func (w *walker) seek(goal world.Point, weight float64) {
	w.goal = goal
	w.goalBias = weight
	w.hasGoal = true
}

// weights returns the unnormalized weight of each direction in walkOrder
func (w *walker) weights() [4]float64 {
	north, south, east, west := 1.0, 1.0, 1.0, 1.0
	width, height := float64(w.grid.Width()), float64(w.grid.Height())
	x, y := float64(w.pos.X), float64(w.pos.Y)

	if w.centerBias > 0 {
		if x < width*0.25 {
			east += w.centerBias
		} else if x > width*0.75 {
			west += w.centerBias
		}
		if y < height*0.25 {
			south += w.centerBias
		} else if y > height*0.75 {
			north += w.centerBias
		}
	}

	if w.hasGoal {
		if w.pos.X < w.goal.X {
			east += w.goalBias
		} else if w.pos.X > w.goal.X {
			west += w.goalBias
		}
		if w.pos.Y < w.goal.Y {
			south += w.goalBias
		} else if w.pos.Y > w.goal.Y {
			north += w.goalBias
		}
	}

	switch w.prev {
	case world.North:
		north += w.previousBias
	case world.South:
		south += w.previousBias
	case world.East:
		east += w.previousBias
	case world.West:
		west += w.previousBias
	}

	return [4]float64{north, south, east, west}
}

// chooseDirection draws one direction from the normalized weights
func (w *walker) chooseDirection(rng *rand.Rand) world.Direction {
	weights := w.weights()
	total := weights[0] + weights[1] + weights[2] + weights[3]
	choice := rng.Float64() * total
	acc := 0.0
	for i, weight := range weights {
		acc += weight
		if choice < acc {
			return walkOrder[i]
		}
	}
	return walkOrder[len(walkOrder)-1]
}

// step makes one move. It returns true if a wall was carved into floor.
// A move that would touch the border is skipped and clears the direction history.
func (w *walker) step(rng *rand.Rand) bool {
	dir := w.chooseDirection(rng)
	next := w.pos.Step(dir)
	if !w.grid.IsPlayablePosition(next.X, next.Y) {
		w.prev = world.NoDirection
		return false
	}
	w.pos = next
	w.prev = dir
	if w.grid.IsWall(next.X, next.Y) {
		w.grid.Carve(next.X, next.Y)
		return true
	}
	return false
}

// walkUntil steps until done reports true or limit steps have been taken.
// It returns false if the limit was hit first.
func (w *walker) walkUntil(rng *rand.Rand, limit int, done func(world.Point) bool) bool {
	for iter := 0; iter < limit; iter++ {
		if done(w.pos) {
			return true
		}
		w.step(rng)
	}
	return done(w.pos)
}

// goalWalkLimit bounds goal-seeking walks on a grid of the given size
func goalWalkLimit(grid *world.Grid) int {
	return 100 * grid.Width() * grid.Height()
}
