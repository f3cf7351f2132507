package generator

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"dungeonlab/pkg/engine/world"
)

// TunnelingGenerator scatters non-overlapping rectangular rooms and joins each
// new room to the previous one with an L-shaped tunnel
type TunnelingGenerator struct {
	cfg TunnelingConfig
}

// NewTunneling creates a tunneling generator
func NewTunneling(cfg TunnelingConfig) *TunnelingGenerator {
	return &TunnelingGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *TunnelingGenerator) Name() string {
	return gotext.Get("Tunneling")
}

// Generate creates a new grid of rooms and tunnels
func (g *TunnelingGenerator) Generate(width, height int, rng *rand.Rand) (*world.Grid, error) {
	grid, _, err := g.generate(width, height, rng)
	return grid, err
}

func (g *TunnelingGenerator) generate(width, height int, rng *rand.Rand) (*world.Grid, []world.Rect, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	minSide := g.cfg.RoomMinSize + 1
	if err := checkDimensions(g.Name(), width, height, minSide, minSide); err != nil {
		return nil, nil, err
	}
	rng = ensureRand(rng)

	grid := world.NewGrid(width, height)
	// Rooms may not reach the last row or column, so the border stays solid
	maxW := min(g.cfg.RoomMaxSize, width-1)
	maxH := min(g.cfg.RoomMaxSize, height-1)

	var rooms []world.Rect
	for iter := 0; iter < g.cfg.MaxRooms; iter++ {
		w := randInt(rng, g.cfg.RoomMinSize, maxW)
		h := randInt(rng, g.cfg.RoomMinSize, maxH)
		x := randInt(rng, 0, width-w-1)
		y := randInt(rng, 0, height-h-1)
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

		carveRect(grid, room)
		if len(rooms) > 0 {
			carveLCorridor(grid, rooms[len(rooms)-1].CenterPoint(), room.CenterPoint(), rng)
		}
		rooms = append(rooms, room)
	}

	return grid, rooms, nil
}
