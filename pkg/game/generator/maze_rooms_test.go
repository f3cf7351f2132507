package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonlab/pkg/engine/world"
)

func TestMazeWithRooms_NoDeadEnds(t *testing.T) {
	g := NewMazeWithRooms(DefaultMazeWithRoomsConfig())
	for seed := int64(0); seed < 10; seed++ {
		grid, err := GenerateSeeded(g, 79, 49, seed)
		require.NoError(t, err)
		grid.ForEachCell(func(x, y int, tile world.Tile) {
			if tile == world.Floor {
				assert.Less(t, grid.CountCardinalWalls(x, y), 3, "seed %d: dead end at (%d,%d)", seed, x, y)
			}
		})
		assertConnected(t, grid)
	}
}

func TestMazeWithRooms_DeadEndsAllowed(t *testing.T) {
	cfg := DefaultMazeWithRoomsConfig()
	cfg.AllowDeadEnds = true
	g := NewMazeWithRooms(cfg)

	for seed := int64(0); seed < 5; seed++ {
		grid, err := GenerateSeeded(g, 41, 31, seed)
		require.NoError(t, err)
		assertConnected(t, grid)
		assertBorderIsWall(t, grid)

		// Every odd cell inside the border is room or maze
		for y := 1; y < 30; y += 2 {
			for x := 1; x < 40; x += 2 {
				assert.True(t, grid.IsFloor(x, y), "seed %d: odd cell (%d,%d) left solid", seed, x, y)
			}
		}
	}
}

func TestMazeWithRooms_EvenSizeKeepsLastColumnSolid(t *testing.T) {
	grid, err := GenerateSeeded(NewMazeWithRooms(DefaultMazeWithRoomsConfig()), 40, 30, 3)
	require.NoError(t, err)
	for y := 0; y < 30; y++ {
		assert.True(t, grid.IsWall(38, y) && grid.IsWall(39, y), "row %d", y)
	}
	for x := 0; x < 40; x++ {
		assert.True(t, grid.IsWall(x, 28) && grid.IsWall(x, 29), "column %d", x)
	}
}

func TestMazeBuilder_RoomsAreOddAligned(t *testing.T) {
	b := &mazeBuilder{
		cfg:    DefaultMazeWithRoomsConfig(),
		grid:   world.NewGrid(41, 31),
		rng:    NewRand(8),
		width:  41,
		height: 31,
	}
	b.regions = newRegionMap(41, 31)
	b.addRooms()
	require.Positive(t, b.regions.count())

	// Rooms span odd to odd, so even rows and columns at the edges stay solid
	assertBorderIsWall(t, b.grid)
	b.grid.ForEachCell(func(x, y int, tile world.Tile) {
		if tile == world.Floor {
			assert.NotEqual(t, unassigned, b.regions.at(world.Pt(x, y)))
		}
	})
	for _, r := range FloorRegions(b.grid) {
		minX, minY := r.Points[0].X, r.Points[0].Y
		for _, p := range r.Points {
			minX, minY = min(minX, p.X), min(minY, p.Y)
		}
		assert.Equal(t, 1, minX%2, "room starts on an even column")
		assert.Equal(t, 1, minY%2, "room starts on an even row")
	}
}

func TestRegionSets_JunctionCollapsesToOneRoot(t *testing.T) {
	s := newRegionSets(5)
	assert.Len(t, s.roots([]int{0, 1, 2, 3}), 4)

	s.join([]int{0, 1, 2, 3})
	assert.Equal(t, 2, s.open)
	assert.Len(t, s.roots([]int{0, 1, 2, 3}), 1)
	assert.Len(t, s.roots([]int{3, 4}), 2)

	// Joining already merged ids changes nothing
	s.join([]int{1, 3})
	assert.Equal(t, 2, s.open)

	s.join([]int{4, 2})
	assert.Equal(t, 1, s.open)
	assert.Len(t, s.roots([]int{0, 1, 2, 3, 4}), 1)
}

func TestMazeBuilder_ConnectRegionsAtJunction(t *testing.T) {
	grid := world.ParseGrid(
		"#####",
		"##.##",
		"#.#.#",
		"##.##",
		"#####",
	)
	b := &mazeBuilder{
		cfg:     DefaultMazeWithRoomsConfig(),
		grid:    grid,
		regions: newRegionMap(5, 5),
		rng:     NewRand(4),
		width:   5,
		height:  5,
	}
	for _, p := range []world.Point{world.Pt(2, 1), world.Pt(1, 2), world.Pt(3, 2), world.Pt(2, 3)} {
		b.regions.startRegion()
		b.regions.label(p)
	}

	b.connectRegions()

	require.NotNil(t, b.sets)
	assert.Equal(t, 1, b.sets.open)
	assert.Len(t, b.sets.roots([]int{0, 1, 2, 3}), 1)
	assertConnected(t, b.grid)
}
