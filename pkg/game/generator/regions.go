package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dungeonlab/pkg/engine/world"
)

// Region is a maximal 4-connected group of floor cells
type Region struct {
	// Points lists the cells in flood order; Points[0] is where the fill started
	Points []world.Point
	set    mapset.Set[world.Point]
}

// Size returns the number of cells in the region
func (r *Region) Size() int {
	return len(r.Points)
}

// Contains reports whether p belongs to the region
func (r *Region) Contains(p world.Point) bool {
	return r.set.Has(p)
}

// Representative returns the cell the region was discovered from
func (r *Region) Representative() world.Point {
	return r.Points[0]
}

// floodFill collects the floor region containing start.
// Cells already marked in visited are skipped and every cell reached is marked.
func floodFill(grid *world.Grid, start world.Point, visited []bool) *Region {
	r := &Region{set: mapset.New[world.Point]()}
	if !grid.IsFloor(start.X, start.Y) {
		return r
	}

	w := grid.Width()
	frontier := queue.New[world.Point]()
	frontier.Enqueue(start)
	visited[start.Y*w+start.X] = true

	for !frontier.Empty() {
		p := frontier.Dequeue()
		r.Points = append(r.Points, p)
		r.set.Put(p)

		for _, dir := range world.AllDirections() {
			n := p.Step(dir)
			if !grid.IsFloor(n.X, n.Y) || visited[n.Y*w+n.X] {
				continue
			}
			visited[n.Y*w+n.X] = true
			frontier.Enqueue(n)
		}
	}
	return r
}

// FloorRegions returns every floor region of the grid, discovered in row-major order
func FloorRegions(grid *world.Grid) []*Region {
	visited := make([]bool, grid.Width()*grid.Height())
	var regions []*Region
	grid.ForEachCell(func(x, y int, t world.Tile) {
		if t != world.Floor || visited[y*grid.Width()+x] {
			return
		}
		regions = append(regions, floodFill(grid, world.Pt(x, y), visited))
	})
	return regions
}

// LargestRegion returns the biggest floor region, or nil if there is no floor
func LargestRegion(grid *world.Grid) *Region {
	var best *Region
	for _, r := range FloorRegions(grid) {
		if best == nil || r.Size() > best.Size() {
			best = r
		}
	}
	return best
}

// connected reports whether floor cells a and b are joined by floor
func connected(grid *world.Grid, a, b world.Point) bool {
	visited := make([]bool, grid.Width()*grid.Height())
	return floodFill(grid, a, visited).Contains(b)
}

// nearestUnconnected returns the index of the region closest to regions[i]
// that floor does not already join to it, comparing representatives only.
// It returns -1 when every region is already connected to regions[i].
func nearestUnconnected(grid *world.Grid, regions []*Region, i int) int {
	from := regions[i].Representative()
	reach := floodFill(grid, from, make([]bool, grid.Width()*grid.Height()))

	best, bestDist := -1, 0.0
	for j, other := range regions {
		if j == i || reach.Contains(other.Representative()) {
			continue
		}
		d := from.Distance(other.Representative())
		if best == -1 || d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// unassigned marks a cell with no region in a regionMap
const unassigned = -1

// regionMap labels grid cells with region ids, built up as areas are carved
type regionMap struct {
	ids     []int
	width   int
	current int
}

func newRegionMap(width, height int) *regionMap {
	ids := make([]int, width*height)
	for i := range ids {
		ids[i] = unassigned
	}
	return &regionMap{ids: ids, width: width, current: unassigned}
}

// startRegion begins a new region and returns its id
func (m *regionMap) startRegion() int {
	m.current++
	return m.current
}

// count returns how many regions have been started
func (m *regionMap) count() int {
	return m.current + 1
}

func (m *regionMap) label(p world.Point) {
	m.ids[p.Y*m.width+p.X] = m.current
}

func (m *regionMap) at(p world.Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= m.width || p.Y*m.width+p.X >= len(m.ids) {
		return unassigned
	}
	return m.ids[p.Y*m.width+p.X]
}
