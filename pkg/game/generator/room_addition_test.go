package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonlab/pkg/engine/world"
)

func TestRoomAddition_RoomsKeepOneTileBuffer(t *testing.T) {
	cfg := DefaultRoomAdditionConfig()
	cfg.IncludeShortcuts = false
	g := NewRoomAddition(cfg)

	for seed := int64(0); seed < 5; seed++ {
		_, rooms, err := g.generate(80, 50, NewRand(seed))
		require.NoError(t, err)
		require.NotEmpty(t, rooms)
		assert.LessOrEqual(t, len(rooms), cfg.MaxRooms)

		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				assert.False(t, rooms[i].crowds(rooms[j]), "seed %d: rooms %d and %d are adjacent", seed, i, j)
			}
		}
	}
}

func TestPlacedRoom_Crowds(t *testing.T) {
	grid := world.NewGrid(12, 6)
	room := &Room{Kind: SquareRoom, cells: world.ParseGrid("..", "..")}
	a := addRoom(grid, room, world.Pt(1, 1))
	b := addRoom(grid, room, world.Pt(4, 1))
	c := addRoom(grid, room, world.Pt(3, 3))

	assert.Equal(t, 4, a.floor.Size())
	assert.False(t, a.crowds(b), "a one tile gap is a buffer")
	assert.True(t, a.crowds(c), "diagonal contact crowds")
	assert.True(t, c.crowds(b))
}

func TestRoomAddition_FirstRoomIsCentered(t *testing.T) {
	cfg := DefaultRoomAdditionConfig()
	cfg.CavernChance = 0
	cfg.BuildRoomAttempts = 0
	cfg.IncludeShortcuts = false

	grid, rooms, err := NewRoomAddition(cfg).generate(40, 40, NewRand(2))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, SquareRoom, rooms[0].kind)
	assert.Equal(t, rooms[0].floor.Size(), grid.CountFloor())
	assert.True(t, grid.IsFloor(20, 20), "map center should be inside the first room")
}

func TestRoomAddition_CavernTooLargeFallsBackToSquare(t *testing.T) {
	cfg := DefaultRoomAdditionConfig()
	cfg.CavernChance = 1
	cfg.BuildRoomAttempts = 0
	cfg.IncludeShortcuts = false

	_, rooms, err := NewRoomAddition(cfg).generate(20, 20, NewRand(2))
	require.NoError(t, err)
	assert.Equal(t, SquareRoom, rooms[0].kind)
}

func TestRoomFits(t *testing.T) {
	grid := world.ParseGrid(
		"##########",
		"#..#######",
		"#..#######",
		"##########",
		"##########",
		"##########",
	)
	square := []world.Point{world.Pt(0, 0), world.Pt(1, 0), world.Pt(0, 1), world.Pt(1, 1)}

	assert.False(t, roomFits(grid, square, world.Pt(3, 1)), "touching diagonally/orthogonally must be rejected")
	assert.True(t, roomFits(grid, square, world.Pt(4, 1)))
	assert.False(t, roomFits(grid, square, world.Pt(8, 1)), "room must stay inside the border")
	assert.True(t, roomFits(grid, square, world.Pt(4, 3)))
}

func TestAddTunnel(t *testing.T) {
	grid := world.NewGrid(10, 5)
	addTunnel(grid, world.Pt(2, 2), world.East, 4)
	for x := 2; x <= 6; x++ {
		assert.True(t, grid.IsFloor(x, 2), "x=%d", x)
	}
	assert.Equal(t, 5, grid.CountFloor())
}

func TestCarveShortcut(t *testing.T) {
	cases := []struct {
		name string
		a, b world.Point
	}{
		{"vertical", world.Pt(3, 1), world.Pt(3, 6)},
		{"horizontal", world.Pt(6, 2), world.Pt(1, 2)},
		{"nw to se", world.Pt(1, 1), world.Pt(6, 6)},
		{"ne to sw", world.Pt(6, 1), world.Pt(1, 6)},
		{"sw to ne", world.Pt(1, 6), world.Pt(6, 1)},
	}
	for _, tc := range cases {
		grid := world.NewGrid(8, 8)
		grid.Carve(tc.a.X, tc.a.Y)
		grid.Carve(tc.b.X, tc.b.Y)
		carveShortcut(grid, tc.a, tc.b)
		assert.Equal(t, grid.CountFloor(), countReachableFloor(grid, tc.a), tc.name)
		assertBorderIsWall(t, grid)
	}
}

func TestPathDistance(t *testing.T) {
	grid := world.ParseGrid(
		"#########",
		"#.......#",
		"#######.#",
		"#.......#",
		"#.#######",
		"#.......#",
		"#########",
	)
	pr, m := newWalkMap(grid)
	assert.Equal(t, 6, pathDistance(pr, m, world.Pt(1, 1), world.Pt(7, 1)))
	assert.Equal(t, 16, pathDistance(pr, m, world.Pt(1, 1), world.Pt(1, 5)))

	grid.Set(7, 2, world.Wall)
	assert.Equal(t, -1, pathDistance(pr, m, world.Pt(1, 1), world.Pt(1, 5)), "grid changes must be visible to the next query")
}

func TestAddShortcuts_CutsLongDetours(t *testing.T) {
	// Two corridors five rows apart, joined only by a long loop around the map
	rows := []string{
		"####################",
		"##................##",
		"##.##############.##",
		"##.##############.##",
		"##.##############.##",
		"##.##############.##",
		"##.............##.##",
		"#################.##",
		"#################.##",
		"#################.##",
		"#################.##",
		"##.............##.##",
		"##.##############.##",
		"##.##############.##",
		"##................##",
		"####################",
	}
	grid := world.ParseGrid(rows...)
	before := grid.CountFloor()

	cfg := DefaultRoomAdditionConfig()
	cfg.ShortcutAttempts = 200
	cfg.MinPathfindingDistance = 20
	g := NewRoomAddition(cfg)
	g.addShortcuts(grid, NewRand(4))

	assert.Greater(t, grid.CountFloor(), before, "expected at least one shortcut")
	assertBorderIsWall(t, grid)
	assertConnected(t, grid)
}
