package generator

import (
	"math/rand"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"dungeonlab/pkg/engine/world"
)

// walkMap exposes the grid's floor to the pathfinder. It reads the grid
// directly, so carving a shortcut is visible to the next query.
type walkMap struct {
	grid *world.Grid
	nb   paths.Neighbors
}

// newWalkMap returns a path range covering grid and a walkability view of it
func newWalkMap(grid *world.Grid) (*paths.PathRange, *walkMap) {
	pr := paths.NewPathRange(gruid.NewRange(0, 0, grid.Width(), grid.Height()))
	return pr, &walkMap{grid: grid}
}

// Neighbors implements paths.Astar with 4-way movement over floor
func (m *walkMap) Neighbors(p gruid.Point) []gruid.Point {
	return m.nb.Cardinal(p, func(q gruid.Point) bool {
		return m.grid.IsFloor(q.X, q.Y)
	})
}

// Cost implements paths.Astar
func (m *walkMap) Cost(p, q gruid.Point) int {
	return 1
}

// Estimation implements paths.Astar
func (m *walkMap) Estimation(p, q gruid.Point) int {
	return paths.DistanceManhattan(p, q)
}

// pathDistance returns the number of steps between from and to over floor,
// or -1 when no path exists
func pathDistance(pr *paths.PathRange, m *walkMap, from, to world.Point) int {
	path := pr.AstarPath(m, gruid.Point{X: from.X, Y: from.Y}, gruid.Point{X: to.X, Y: to.Y})
	if len(path) == 0 {
		return -1
	}
	return len(path) - 1
}

// addShortcuts samples floor tiles on room edges and tunnels straight to floor
// ShortcutLength tiles away whenever walking there takes more than MinPathfindingDistance steps
func (g *RoomAdditionGenerator) addShortcuts(grid *world.Grid, rng *rand.Rand) {
	length := g.cfg.ShortcutLength
	width, height := grid.Width(), grid.Height()
	if width < 2*length+2 || height < 2*length+2 {
		return
	}

	pr, m := newWalkMap(grid)

	for iter := 0; iter < g.cfg.ShortcutAttempts; iter++ {
		from, ok := findShortcutStart(grid, length, rng)
		if !ok {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				to := from.Add(world.Pt(dx, dy).Mul(length))
				if !grid.IsFloor(to.X, to.Y) {
					continue
				}
				// No path counts as no shortcut
				if pathDistance(pr, m, from, to) > g.cfg.MinPathfindingDistance {
					carveShortcut(grid, from, to)
				}
			}
		}
	}
}

// findShortcutStart samples a floor tile with at least one wall beside it,
// far enough from the edge that every offset of length stays on the map
func findShortcutStart(grid *world.Grid, length int, rng *rand.Rand) (world.Point, bool) {
	width, height := grid.Width(), grid.Height()
	for iter := 0; iter < width*height; iter++ {
		p := world.Pt(randInt(rng, length+1, width-length-1), randInt(rng, length+1, height-length-1))
		if grid.IsFloor(p.X, p.Y) && grid.CountCardinalWalls(p.X, p.Y) > 0 {
			return p, true
		}
	}
	return world.Point{}, false
}

// carveShortcut carves a straight or diagonal tunnel between a and b.
// Diagonals are cut as stair steps so they stay 4-connected.
func carveShortcut(grid *world.Grid, a, b world.Point) {
	switch {
	case a.X == b.X:
		carveVertical(grid, a.Y, b.Y, a.X)
	case a.Y == b.Y:
		carveHorizontal(grid, a.X, b.X, a.Y)
	case (b.Y-a.Y)*(b.X-a.X) > 0:
		// NW to SE
		x, y := min(a.X, b.X), min(a.Y, b.Y)
		for x != max(a.X, b.X) {
			x++
			grid.Carve(x, y)
			y++
			grid.Carve(x, y)
		}
	default:
		// NE to SW
		x, y := min(a.X, b.X), max(a.Y, b.Y)
		for x != max(a.X, b.X) {
			x++
			grid.Carve(x, y)
			y--
			grid.Carve(x, y)
		}
	}
}
