package generator

import (
	"math/rand"
	"slices"

	"github.com/leonelquinteros/gotext"
	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/stack"

	"dungeonlab/pkg/engine/world"
)

// MazeWithRoomsGenerator places rooms, fills the gaps with a winding maze,
// opens connectors until everything is one region and then prunes dead ends
type MazeWithRoomsGenerator struct {
	cfg MazeWithRoomsConfig
}

// NewMazeWithRooms creates a rooms-and-mazes generator
func NewMazeWithRooms(cfg MazeWithRoomsConfig) *MazeWithRoomsGenerator {
	return &MazeWithRoomsGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *MazeWithRoomsGenerator) Name() string {
	return gotext.Get("Maze With Rooms")
}

// mazeBuilder holds the state of one maze generation
type mazeBuilder struct {
	cfg     MazeWithRoomsConfig
	grid    *world.Grid
	regions *regionMap
	sets    *regionSets
	rng     *rand.Rand
	// width and height are the odd extents the maze is built in
	width, height int
}

// Generate creates a new maze with rooms
func (g *MazeWithRoomsGenerator) Generate(width, height int, rng *rand.Rand) (*world.Grid, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	// The odd-reduced map must hold the smallest room inside its border
	minSide := g.cfg.smallestRoom() + 2
	if err := checkDimensions(g.Name(), width, height, minSide, minSide); err != nil {
		return nil, err
	}
	rng = ensureRand(rng)

	b := &mazeBuilder{
		cfg:    g.cfg,
		grid:   world.NewGrid(width, height),
		rng:    rng,
		width:  width,
		height: height,
	}
	if b.width%2 == 0 {
		b.width--
	}
	if b.height%2 == 0 {
		b.height--
	}
	b.regions = newRegionMap(width, height)

	b.addRooms()
	for y := 1; y < b.height; y += 2 {
		for x := 1; x < b.width; x += 2 {
			if b.grid.IsWall(x, y) {
				b.growMaze(world.Pt(x, y))
			}
		}
	}
	b.connectRegions()
	if !g.cfg.AllowDeadEnds {
		b.removeDeadEnds()
	}

	return b.grid, nil
}

func (b *mazeBuilder) carve(p world.Point) {
	b.grid.Carve(p.X, p.Y)
	b.regions.label(p)
}

// addRooms places odd-sized rooms on odd coordinates, skipping any that touch an earlier room
func (b *mazeBuilder) addRooms() {
	var rooms []world.Rect
	for iter := 0; iter < b.cfg.BuildRoomAttempts; iter++ {
		w := randInt(b.rng, b.cfg.RoomMinSize/2, b.cfg.RoomMaxSize/2)*2 + 1
		h := randInt(b.rng, b.cfg.RoomMinSize/2, b.cfg.RoomMaxSize/2)*2 + 1
		if b.width-w-1 < 0 || b.height-h-1 < 0 {
			continue
		}
		x := (randInt(b.rng, 0, b.width-w-1)/2)*2 + 1
		y := (randInt(b.rng, 0, b.height-h-1)/2)*2 + 1
		room := world.NewRect(x, y, w, h)

		failed := false
		for _, other := range rooms {
			if room.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		rooms = append(rooms, room)
		b.regions.startRegion()
		for ry := room.Y1; ry < room.Y2; ry++ {
			for rx := room.X1; rx < room.X2; rx++ {
				b.carve(world.Pt(rx, ry))
			}
		}
	}
}

// canCarve reports whether the maze can extend two cells from pos in dir
func (b *mazeBuilder) canCarve(pos world.Point, dir world.Direction) bool {
	edge := pos.Add(dir.Vector().Mul(3))
	if edge.X <= 0 || edge.X >= b.width || edge.Y <= 0 || edge.Y >= b.height {
		return false
	}
	dest := pos.Add(dir.Vector().Mul(2))
	return b.grid.IsWall(dest.X, dest.Y)
}

// growMaze runs a growing-tree maze from start as one new region, backtracking
// through a stack and preferring to keep its last direction
func (b *mazeBuilder) growMaze(start world.Point) {
	b.regions.startRegion()
	b.carve(start)

	cells := stack.New[world.Point]()
	cells.Push(start)
	lastDir := world.NoDirection

	for cells.Size() > 0 {
		cell := cells.Peek()

		var open []world.Direction
		for _, dir := range []world.Direction{world.North, world.South, world.East, world.West} {
			if b.canCarve(cell, dir) {
				open = append(open, dir)
			}
		}

		if len(open) == 0 {
			cells.Pop()
			lastDir = world.NoDirection
			continue
		}

		var dir world.Direction
		if slices.Contains(open, lastDir) && b.rng.Float64() > b.cfg.WindingPercent {
			dir = lastDir
		} else {
			dir = open[b.rng.Intn(len(open))]
		}

		b.carve(cell.Step(dir))
		next := cell.Add(dir.Vector().Mul(2))
		b.carve(next)
		cells.Push(next)
		lastDir = dir
	}
}

// connectorRegions returns the distinct regions touching p
func (b *mazeBuilder) connectorRegions(p world.Point) []int {
	var out []int
	for _, dir := range world.AllDirections() {
		id := b.regions.at(p.Step(dir))
		if id != unassigned && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// regionSets tracks which maze regions have been joined. Each region id owns
// a disjoint-set element and joined regions share one root.
type regionSets struct {
	elems []*disjoint.Element
	// open counts the distinct sets left
	open int
}

func newRegionSets(n int) *regionSets {
	s := &regionSets{elems: make([]*disjoint.Element, n), open: n}
	for i := range s.elems {
		s.elems[i] = disjoint.NewElement()
	}
	return s
}

// roots returns the distinct set roots of the given region ids
func (s *regionSets) roots(ids []int) []*disjoint.Element {
	var out []*disjoint.Element
	for _, id := range ids {
		if r := s.elems[id].Find(); !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// join merges the sets of all given region ids into one
func (s *regionSets) join(ids []int) {
	roots := s.roots(ids)
	for _, r := range roots[min(1, len(roots)):] {
		disjoint.Union(roots[0], r)
		s.open--
	}
}

// connectRegions opens connectors at random until every region is merged into one.
// Connectors that became redundant are dropped, and a few are opened anyway to make loops.
func (b *mazeBuilder) connectRegions() {
	var candidates []world.Point
	touching := map[world.Point][]int{}
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			p := world.Pt(x, y)
			if !b.grid.IsWall(x, y) {
				continue
			}
			regions := b.connectorRegions(p)
			if len(regions) < 2 {
				continue
			}
			touching[p] = regions
			candidates = append(candidates, p)
		}
	}

	b.sets = newRegionSets(b.regions.count())
	separates := func(p world.Point) bool {
		return len(b.sets.roots(touching[p])) > 1
	}

	connectors := append([]world.Point(nil), candidates...)
	for b.sets.open > 1 {
		if len(connectors) == 0 {
			// Refill from walls that still separate distinct regions
			for _, p := range candidates {
				if b.grid.IsWall(p.X, p.Y) && separates(p) {
					connectors = append(connectors, p)
				}
			}
			if len(connectors) == 0 {
				break
			}
		}

		connector := connectors[b.rng.Intn(len(connectors))]
		b.grid.Carve(connector.X, connector.Y)
		b.sets.join(touching[connector])

		kept := connectors[:0]
		for _, pos := range connectors {
			if connector.Distance(pos) < 2 {
				continue
			}
			if separates(pos) {
				kept = append(kept, pos)
				continue
			}
			if b.rng.Float64() < b.cfg.ConnectionChance {
				b.grid.Carve(pos.X, pos.Y)
			}
		}
		connectors = kept
	}
}

// removeDeadEnds fills floor cells with at most one floor neighbour until none are left
func (b *mazeBuilder) removeDeadEnds() {
	for done := false; !done; {
		done = true
		for y := 1; y < b.height; y++ {
			for x := 1; x < b.width; x++ {
				if !b.grid.IsFloor(x, y) {
					continue
				}
				if b.grid.CountCardinalWalls(x, y) < 3 {
					continue
				}
				done = false
				b.grid.Set(x, y, world.Wall)
			}
		}
	}
}
