// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"dungeonlab/pkg/engine/world"
	"dungeonlab/pkg/game/generator"
	"dungeonlab/pkg/game/state"
)

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "map.txt"

// maxListedRegions caps the per-region lines in a dump
const maxListedRegions = 20

// WriteMapDump writes a debug dump of the session's map: metadata, legend, the
// map itself and its floor regions. The format is sections of key: value lines.
func WriteMapDump(w io.Writer, s *state.Session) error {
	if s.Grid == nil {
		return fmt.Errorf("no grid")
	}
	grid := s.Grid

	regions := generator.FloorRegions(grid)
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Size() > regions[j].Size()
	})

	floor := grid.CountFloor()
	largest, largestAt := 0, "-"
	if r := generator.LargestRegion(grid); r != nil {
		p := r.Representative()
		largest, largestAt = r.Size(), fmt.Sprintf("%d,%d", p.X, p.Y)
	}

	borderIsWall := true
	grid.ForEachCell(func(x, y int, _ world.Tile) {
		if grid.IsOnPerimeter(x, y) && grid.IsFloor(x, y) {
			borderIsWall = false
		}
	})

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, connectivity) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "algorithm: %s\n", s.Algorithm)
	fmt.Fprintf(w, "generator: %s\n", s.Generator.Name())
	fmt.Fprintf(w, "seed: %d\n", s.Seed)
	fmt.Fprintf(w, "width: %d\n", grid.Width())
	fmt.Fprintf(w, "height: %d\n", grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "floor_tiles: %d\n", floor)
	fmt.Fprintf(w, "floor_ratio: %.3f\n", float64(floor)/float64(grid.Width()*grid.Height()))
	fmt.Fprintf(w, "regions: %d\n", len(regions))
	fmt.Fprintf(w, "largest_region: %d\n", largest)
	fmt.Fprintf(w, "largest_region_start: %s\n", largestAt)
	fmt.Fprintf(w, "border_is_wall: %v\n", borderIsWall)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = floor  # = wall")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	fmt.Fprint(w, grid.String())
	fmt.Fprintln(w, "")

	// --- Regions ---
	fmt.Fprintln(w, "--- Regions (largest first) ---")
	for i, r := range regions {
		if i == maxListedRegions {
			fmt.Fprintf(w, "  ... %d more\n", len(regions)-maxListedRegions)
			break
		}
		p := r.Representative()
		fmt.Fprintf(w, "  x: %d y: %d size: %d\n", p.X, p.Y, r.Size())
	}

	return nil
}

// DumpMapToFile writes WriteMapDump output to filename (DefaultDumpFilename when empty)
// and returns the absolute path written.
func DumpMapToFile(s *state.Session, filename string) (string, error) {
	if filename == "" {
		filename = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
