package generator

// TunnelingConfig controls the classic rooms-and-tunnels generator
type TunnelingConfig struct {
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int
}

// DefaultTunnelingConfig returns the stock tunneling settings
func DefaultTunnelingConfig() TunnelingConfig {
	return TunnelingConfig{MaxRooms: 30, RoomMinSize: 6, RoomMaxSize: 15}
}

// Validate checks the configuration for impossible values
func (c TunnelingConfig) Validate() error {
	if c.MaxRooms < 1 {
		return configError("tunneling: MaxRooms must be at least 1, got %d", c.MaxRooms)
	}
	if c.RoomMinSize < 3 {
		return configError("tunneling: RoomMinSize must be at least 3, got %d", c.RoomMinSize)
	}
	if c.RoomMaxSize < c.RoomMinSize {
		return configError("tunneling: RoomMinSize %d exceeds RoomMaxSize %d", c.RoomMinSize, c.RoomMaxSize)
	}
	return nil
}

// PartitionConfig controls the binary space partition shared by the BSP family.
// Leaf sizes bound the partition, room sizes bound the room carved in each leaf.
type PartitionConfig struct {
	MaxLeafSize int
	MinLeafSize int
	RoomMinSize int
	RoomMaxSize int
}

// DefaultBSPConfig returns the stock BSP tree settings
func DefaultBSPConfig() PartitionConfig {
	return PartitionConfig{MaxLeafSize: 24, MinLeafSize: 10, RoomMinSize: 6, RoomMaxSize: 15}
}

// DefaultCityWallsConfig returns the stock city walls settings
func DefaultCityWallsConfig() PartitionConfig {
	return PartitionConfig{MaxLeafSize: 30, MinLeafSize: 10, RoomMinSize: 8, RoomMaxSize: 16}
}

// Validate checks the configuration for impossible values
func (c PartitionConfig) Validate() error {
	return c.validate(3)
}

func (c PartitionConfig) validate(minRoom int) error {
	if c.RoomMinSize < minRoom {
		return configError("partition: RoomMinSize must be at least %d, got %d", minRoom, c.RoomMinSize)
	}
	if c.RoomMaxSize < c.RoomMinSize {
		return configError("partition: RoomMinSize %d exceeds RoomMaxSize %d", c.RoomMinSize, c.RoomMaxSize)
	}
	// A leaf must be able to host the smallest room with one spare column
	if c.MinLeafSize < c.RoomMinSize+1 {
		return configError("partition: MinLeafSize %d cannot hold a room of %d", c.MinLeafSize, c.RoomMinSize)
	}
	if c.MaxLeafSize < c.MinLeafSize {
		return configError("partition: MinLeafSize %d exceeds MaxLeafSize %d", c.MinLeafSize, c.MaxLeafSize)
	}
	return nil
}

// MessyBSPConfig is a partition whose halls are random walks, followed by smoothing
type MessyBSPConfig struct {
	Partition   PartitionConfig
	SmoothEdges bool
	// Smoothing turns a wall with at most this many wall neighbours into floor
	Smoothing int
	// Filling turns a floor with at least this many wall neighbours into wall
	Filling int
	Passes  int
}

// DefaultMessyBSPConfig returns the stock messy BSP settings
func DefaultMessyBSPConfig() MessyBSPConfig {
	return MessyBSPConfig{
		Partition:   DefaultBSPConfig(),
		SmoothEdges: true,
		Smoothing:   1,
		Filling:     3,
		Passes:      3,
	}
}

// Validate checks the configuration for impossible values
func (c MessyBSPConfig) Validate() error {
	if err := c.Partition.Validate(); err != nil {
		return err
	}
	if !c.SmoothEdges {
		return nil
	}
	if c.Smoothing < 0 || c.Smoothing > 3 {
		return configError("messy bsp: Smoothing must be in 0..3, got %d", c.Smoothing)
	}
	// Filling below 3 would eat corridor cells and split the map
	if c.Filling < 3 || c.Filling > 4 {
		return configError("messy bsp: Filling must be 3 or 4, got %d", c.Filling)
	}
	if c.Passes < 0 {
		return configError("messy bsp: Passes must not be negative, got %d", c.Passes)
	}
	return nil
}

// DrunkardsWalkConfig controls the single-walker cave generator
type DrunkardsWalkConfig struct {
	// PercentGoal is the fraction of all tiles to turn into floor
	PercentGoal float64
	// WalkIterations caps the walk; it is raised to ten times the tile count when lower
	WalkIterations       int
	WeightTowardCenter   float64
	WeightTowardPrevious float64
}

// DefaultDrunkardsWalkConfig returns the stock drunkard's walk settings
func DefaultDrunkardsWalkConfig() DrunkardsWalkConfig {
	return DrunkardsWalkConfig{
		PercentGoal:          0.4,
		WalkIterations:       25000,
		WeightTowardCenter:   0.15,
		WeightTowardPrevious: 0.7,
	}
}

// Validate checks the configuration for impossible values
func (c DrunkardsWalkConfig) Validate() error {
	if c.PercentGoal <= 0 || c.PercentGoal > 1 {
		return configError("drunkard's walk: PercentGoal must be in (0,1], got %g", c.PercentGoal)
	}
	if c.WalkIterations < 0 {
		return configError("drunkard's walk: WalkIterations must not be negative, got %d", c.WalkIterations)
	}
	if c.WeightTowardCenter < 0 || c.WeightTowardPrevious < 0 {
		return configError("drunkard's walk: weights must not be negative")
	}
	return nil
}

// CellularAutomataConfig controls the cave generator
type CellularAutomataConfig struct {
	Iterations int
	// Neighbors is the wall count cutoff of the automaton rule
	Neighbors       int
	WallProbability float64
	MinCaveSize     int
	// MaxCaveSize is reported by tooling only, caves are never split
	MaxCaveSize int
	SmoothEdges bool
	Smoothing   int
}

// DefaultCellularAutomataConfig returns the stock cave settings
func DefaultCellularAutomataConfig() CellularAutomataConfig {
	return CellularAutomataConfig{
		Iterations:      30000,
		Neighbors:       4,
		WallProbability: 0.5,
		MinCaveSize:     16,
		MaxCaveSize:     500,
		SmoothEdges:     true,
		Smoothing:       1,
	}
}

// Validate checks the configuration for impossible values
func (c CellularAutomataConfig) Validate() error {
	if c.Iterations < 0 {
		return configError("cellular automata: Iterations must not be negative, got %d", c.Iterations)
	}
	if c.Neighbors < 0 || c.Neighbors > 8 {
		return configError("cellular automata: Neighbors must be in 0..8, got %d", c.Neighbors)
	}
	if c.WallProbability < 0 || c.WallProbability > 1 {
		return configError("cellular automata: WallProbability must be in [0,1], got %g", c.WallProbability)
	}
	if c.MinCaveSize < 1 {
		return configError("cellular automata: MinCaveSize must be at least 1, got %d", c.MinCaveSize)
	}
	if c.MaxCaveSize < c.MinCaveSize {
		return configError("cellular automata: MinCaveSize %d exceeds MaxCaveSize %d", c.MinCaveSize, c.MaxCaveSize)
	}
	if c.SmoothEdges && (c.Smoothing < 0 || c.Smoothing > 3) {
		return configError("cellular automata: Smoothing must be in 0..3, got %d", c.Smoothing)
	}
	return nil
}

// RoomAdditionConfig controls the incremental room placement generator
type RoomAdditionConfig struct {
	BlobMaxSize  int // bounding box of automaton blob rooms
	MinRoomTiles int // smallest blob region kept, in tiles
	MaxRooms     int

	SquareRoomMinSize int
	SquareRoomMaxSize int
	CrossRoomMinSize  int
	CrossRoomMaxSize  int

	CavernChance  float64 // chance the first room is a cavern
	CavernMaxSize int

	WallProbability float64
	Neighbors       int

	SquareRoomChance float64
	CrossRoomChance  float64

	BuildRoomAttempts int
	PlaceRoomAttempts int
	MaxTunnelLength   int

	IncludeShortcuts       bool
	ShortcutAttempts       int
	ShortcutLength         int
	MinPathfindingDistance int
}

// DefaultRoomAdditionConfig returns the stock room addition settings
func DefaultRoomAdditionConfig() RoomAdditionConfig {
	return RoomAdditionConfig{
		BlobMaxSize:  18,
		MinRoomTiles: 16,
		MaxRooms:     30,

		SquareRoomMinSize: 6,
		SquareRoomMaxSize: 12,
		CrossRoomMinSize:  6,
		CrossRoomMaxSize:  12,

		CavernChance:  0.4,
		CavernMaxSize: 35,

		WallProbability: 0.45,
		Neighbors:       4,

		SquareRoomChance: 0.2,
		CrossRoomChance:  0.15,

		BuildRoomAttempts: 500,
		PlaceRoomAttempts: 20,
		MaxTunnelLength:   12,

		IncludeShortcuts:       true,
		ShortcutAttempts:       500,
		ShortcutLength:         5,
		MinPathfindingDistance: 50,
	}
}

// Validate checks the configuration for impossible values
func (c RoomAdditionConfig) Validate() error {
	if c.SquareRoomMinSize < 3 || c.SquareRoomMaxSize < c.SquareRoomMinSize {
		return configError("room addition: square room size %d..%d is invalid", c.SquareRoomMinSize, c.SquareRoomMaxSize)
	}
	// Cross bands are at least min wide and the box is at least min+2
	if c.CrossRoomMinSize < 2 || c.CrossRoomMaxSize < c.CrossRoomMinSize+2 {
		return configError("room addition: cross room size %d..%d is invalid", c.CrossRoomMinSize, c.CrossRoomMaxSize)
	}
	if c.BlobMaxSize < 5 || c.CavernMaxSize < 5 {
		return configError("room addition: blob sizes must be at least 5")
	}
	if c.MinRoomTiles < 1 {
		return configError("room addition: MinRoomTiles must be at least 1, got %d", c.MinRoomTiles)
	}
	if c.MaxRooms < 1 {
		return configError("room addition: MaxRooms must be at least 1, got %d", c.MaxRooms)
	}
	for _, p := range []float64{c.CavernChance, c.WallProbability, c.SquareRoomChance, c.CrossRoomChance} {
		if p < 0 || p > 1 {
			return configError("room addition: probability %g out of [0,1]", p)
		}
	}
	if c.SquareRoomChance+c.CrossRoomChance > 1 {
		return configError("room addition: SquareRoomChance+CrossRoomChance exceeds 1")
	}
	if c.Neighbors < 0 || c.Neighbors > 8 {
		return configError("room addition: Neighbors must be in 0..8, got %d", c.Neighbors)
	}
	if c.BuildRoomAttempts < 0 || c.PlaceRoomAttempts < 1 || c.MaxTunnelLength < 1 {
		return configError("room addition: attempt budgets must be positive")
	}
	if c.IncludeShortcuts && (c.ShortcutAttempts < 0 || c.ShortcutLength < 1 || c.MinPathfindingDistance < 0) {
		return configError("room addition: shortcut settings are invalid")
	}
	return nil
}

// MazeWithRoomsConfig controls the rooms-and-mazes generator
type MazeWithRoomsConfig struct {
	RoomMinSize       int
	RoomMaxSize       int
	BuildRoomAttempts int
	// ConnectionChance is the chance a redundant connector is opened anyway
	ConnectionChance float64
	// WindingPercent is the chance the maze turns when it could go straight
	WindingPercent float64
	AllowDeadEnds  bool
}

// DefaultMazeWithRoomsConfig returns the stock rooms-and-mazes settings
func DefaultMazeWithRoomsConfig() MazeWithRoomsConfig {
	return MazeWithRoomsConfig{
		RoomMinSize:       6,
		RoomMaxSize:       13,
		BuildRoomAttempts: 100,
		ConnectionChance:  0.04,
		WindingPercent:    0.1,
		AllowDeadEnds:     false,
	}
}

// Validate checks the configuration for impossible values
func (c MazeWithRoomsConfig) Validate() error {
	if c.RoomMinSize < 2 {
		return configError("maze: RoomMinSize must be at least 2, got %d", c.RoomMinSize)
	}
	if c.RoomMaxSize < c.RoomMinSize {
		return configError("maze: RoomMinSize %d exceeds RoomMaxSize %d", c.RoomMinSize, c.RoomMaxSize)
	}
	if c.BuildRoomAttempts < 0 {
		return configError("maze: BuildRoomAttempts must not be negative, got %d", c.BuildRoomAttempts)
	}
	if c.ConnectionChance < 0 || c.ConnectionChance > 1 || c.WindingPercent < 0 || c.WindingPercent > 1 {
		return configError("maze: probabilities must be in [0,1]")
	}
	return nil
}

// smallestRoom is the odd side length of the smallest maze room
func (c MazeWithRoomsConfig) smallestRoom() int {
	return (c.RoomMinSize/2)*2 + 1
}
