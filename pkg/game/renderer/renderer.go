package renderer

import (
	"dungeonlab/pkg/engine/world"
)

// Version is printed by the command's -version flag
const Version = "0.3.0"

// Tile icons. The plain pair matches world.Grid.String so uncoloured output can be parsed back.
const (
	IconWall       = "▒"
	IconFloor      = "·"
	IconWallPlain  = "#"
	IconFloorPlain = "."
)

// TileIcon returns the icon for a tile
func TileIcon(t world.Tile, plain bool) string {
	switch {
	case t == world.Floor && plain:
		return IconFloorPlain
	case t == world.Floor:
		return IconFloor
	case plain:
		return IconWallPlain
	default:
		return IconWall
	}
}
