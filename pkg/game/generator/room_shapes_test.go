package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonlab/pkg/engine/world"
)

func TestSquareRoom(t *testing.T) {
	cfg := DefaultRoomAdditionConfig()
	rng := NewRand(1)
	for iter := 0; iter < 50; iter++ {
		r := squareRoom(cfg, rng)
		assert.Equal(t, SquareRoom, r.Kind)
		assert.GreaterOrEqual(t, r.Width(), cfg.SquareRoomMinSize-2)
		assert.LessOrEqual(t, r.Width(), cfg.SquareRoomMaxSize-2)
		assert.Len(t, r.Footprint(), r.Width()*r.Height())
	}
}

func TestCrossRoom(t *testing.T) {
	cfg := DefaultRoomAdditionConfig()
	rng := NewRand(2)
	for iter := 0; iter < 50; iter++ {
		r := crossRoom(cfg, rng)
		require.Equal(t, CrossRoom, r.Kind)
		assert.Len(t, FloorRegions(r.cells), 1)

		// Both bands span the whole box
		cx, cy := r.Width()/2, r.Height()/2
		assert.True(t, r.IsFloor(0, cy), "horizontal band misses the left edge")
		assert.True(t, r.IsFloor(r.Width()-1, cy), "horizontal band misses the right edge")
		assert.True(t, r.IsFloor(cx, 0), "vertical band misses the top edge")
		assert.True(t, r.IsFloor(cx, r.Height()-1), "vertical band misses the bottom edge")
		assert.False(t, r.IsFloor(0, 0), "corners stay solid")
	}
}

func TestBlobRoom(t *testing.T) {
	cfg := DefaultRoomAdditionConfig()
	rng := NewRand(3)
	for _, kind := range []RoomKind{CellularBlobRoom, CavernRoom} {
		size := cfg.BlobMaxSize
		if kind == CavernRoom {
			size = cfg.CavernMaxSize
		}
		for iter := 0; iter < 10; iter++ {
			r := blobRoom(kind, size, cfg, rng)
			if r.Kind == SquareRoom {
				continue
			}
			regions := FloorRegions(r.cells)
			require.Len(t, regions, 1, kind.String())
			assert.GreaterOrEqual(t, regions[0].Size(), cfg.MinRoomTiles)
			assertBorderIsWall(t, r.cells)
		}
	}
}

func TestBlobRoom_FallsBackToSquare(t *testing.T) {
	cfg := DefaultRoomAdditionConfig()
	cfg.WallProbability = 1
	r := blobRoom(CellularBlobRoom, 12, cfg, NewRand(4))
	assert.Equal(t, SquareRoom, r.Kind)
}

func TestKeepLargestRegion(t *testing.T) {
	cells := world.ParseGrid(
		"#######",
		"#..#..#",
		"#..#..#",
		"#..####",
		"#######",
	)
	require.True(t, keepLargestRegion(cells, 3))
	assert.Equal(t, 6, cells.CountFloor())
	assert.True(t, cells.IsWall(4, 1))

	assert.False(t, keepLargestRegion(cells, 7))
	assert.Zero(t, cells.CountFloor())
}

func TestRoomKindString(t *testing.T) {
	assert.Equal(t, "Cavern", CavernRoom.String())
	assert.Equal(t, "Unknown", RoomKind(9).String())
}
