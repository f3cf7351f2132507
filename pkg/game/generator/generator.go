package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"dungeonlab/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms.
// Generate validates its input before allocating and never keeps a reference to the grid.
type GridGenerator interface {
	Generate(width, height int, rng *rand.Rand) (*world.Grid, error)
	Name() string
}

// Algorithm names one of the available generation strategies
type Algorithm int

// Available algorithms
const (
	Tunneling Algorithm = iota
	BSPTree
	DrunkardsWalk
	CellularAutomata
	RoomAddition
	CityWalls
	MazeWithRooms
	MessyBSPTree
)

var algorithmNames = []string{
	Tunneling:        "tunneling",
	BSPTree:          "bsp",
	DrunkardsWalk:    "drunkards-walk",
	CellularAutomata: "cellular-automata",
	RoomAddition:     "room-addition",
	CityWalls:        "city-walls",
	MazeWithRooms:    "maze-with-rooms",
	MessyBSPTree:     "messy-bsp",
}

// AllAlgorithms returns every algorithm in menu order
func AllAlgorithms() []Algorithm {
	return []Algorithm{Tunneling, BSPTree, DrunkardsWalk, CellularAutomata, RoomAddition, CityWalls, MazeWithRooms, MessyBSPTree}
}

// String returns the command-line name of the algorithm
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm looks up an algorithm by its command-line name or menu number (1-8)
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range algorithmNames {
		if s == name || s == fmt.Sprint(i+1) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// New builds the generator for alg with its default configuration
func New(alg Algorithm) (GridGenerator, error) {
	switch alg {
	case Tunneling:
		return NewTunneling(DefaultTunnelingConfig()), nil
	case BSPTree:
		return NewBSP(DefaultBSPConfig()), nil
	case DrunkardsWalk:
		return NewDrunkardsWalk(DefaultDrunkardsWalkConfig()), nil
	case CellularAutomata:
		return NewCellularAutomata(DefaultCellularAutomataConfig()), nil
	case RoomAddition:
		return NewRoomAddition(DefaultRoomAdditionConfig()), nil
	case CityWalls:
		return NewCityWalls(DefaultCityWallsConfig()), nil
	case MazeWithRooms:
		return NewMazeWithRooms(DefaultMazeWithRoomsConfig()), nil
	case MessyBSPTree:
		return NewMessyBSP(DefaultMessyBSPConfig()), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}

// Available generators with default settings
var (
	BSP = NewBSP(DefaultBSPConfig())
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = BSP

// NewRand returns a random source seeded with seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// GenerateSeeded runs g with a fresh source seeded with seed.
// The same seed and dimensions always produce the same grid.
func GenerateSeeded(g GridGenerator, width, height int, seed int64) (*world.Grid, error) {
	return g.Generate(width, height, NewRand(seed))
}

// ensureRand falls back to a time-seeded source so a nil rng is never dereferenced
func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(time.Now().UnixNano())
	}
	return rng
}

// randInt returns a uniform integer in [lo, hi]. It returns lo when the range is empty.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// carveRect carves the cells strictly inside r
func carveRect(grid *world.Grid, r world.Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			grid.Carve(x, y)
		}
	}
}

// carveHorizontal carves a straight run along row y between x1 and x2
func carveHorizontal(grid *world.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		grid.Carve(x, y)
	}
}

// carveVertical carves a straight run along column x between y1 and y2
func carveVertical(grid *world.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		grid.Carve(x, y)
	}
}

// carveLCorridor joins a and b with an L-shaped corridor whose orientation is a coin flip
func carveLCorridor(grid *world.Grid, a, b world.Point, rng *rand.Rand) {
	if rng.Intn(2) == 1 {
		// Horizontal first, then vertical
		carveHorizontal(grid, a.X, b.X, a.Y)
		carveVertical(grid, a.Y, b.Y, b.X)
	} else {
		// Vertical first, then horizontal
		carveVertical(grid, a.Y, b.Y, a.X)
		carveHorizontal(grid, a.X, b.X, b.Y)
	}
}
