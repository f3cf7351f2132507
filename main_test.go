package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dungeonlab/pkg/engine/input"
	"dungeonlab/pkg/game/generator"
	"dungeonlab/pkg/game/renderer"
	"dungeonlab/pkg/game/state"
)

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-list", "-no-color"}, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(generator.AllAlgorithms()) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(generator.AllAlgorithms()), len(lines), out.String())
	}
	if lines[6] != "7. maze-with-rooms  Maze With Rooms" {
		t.Errorf("unexpected line %q", lines[6])
	}
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-version"}, &out); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "dungeonlab "+renderer.Version+"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRun_SingleMapIsReproducible(t *testing.T) {
	args := []string{"-no-color", "-algorithm", "tunneling", "-width", "40", "-height", "30", "-seed", "77"}
	var a, b bytes.Buffer
	if err := run(args, &a); err != nil {
		t.Fatal(err)
	}
	if err := run(args, &b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same flags produced different output")
	}

	want, err := generator.GenerateSeeded(generator.NewTunneling(generator.DefaultTunnelingConfig()), 40, 30, 77)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(a.String(), want.String()) {
		t.Error("output does not contain the seeded map")
	}
}

func TestRun_WritesDumpAndHTML(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "map.txt")
	page := filepath.Join(dir, "map.html")

	var out bytes.Buffer
	err := run([]string{"-no-color", "-algorithm", "4", "-width", "50", "-height", "30", "-seed", "3", "-dump", dump, "-html", page}, &out)
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{dump, page} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s: %v", path, err)
		}
	}
}

func TestRun_AllWithFilter(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-no-color", "-all", "-algorithm", "bsp", "-width", "50", "-height", "30", "-seed", "5"}, &out); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), "Algorithm: "); got != 2 {
		t.Errorf("expected 2 maps, got %d", got)
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-algorithm", "spiral"}, &out); !errors.Is(err, generator.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if err := run([]string{"-width", "3", "-height", "3"}, &out); !errors.Is(err, generator.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestProcessIntent(t *testing.T) {
	s := state.NewSession(40, 30)
	if err := s.Regenerate(9); err != nil {
		t.Fatal(err)
	}
	o := &options{dump: filepath.Join(t.TempDir(), "map.txt")}

	if processIntent(s, o, input.Intent{Action: input.ActionNextAlgorithm}) {
		t.Fatal("next should not quit")
	}
	if s.Algorithm != generator.DrunkardsWalk || s.Seed != 9 {
		t.Errorf("expected drunkard's walk with the same seed, got %v seed %d", s.Algorithm, s.Seed)
	}

	processIntent(s, o, input.Intent{Action: input.ActionPrevAlgorithm})
	processIntent(s, o, input.Intent{Action: input.ActionPrevAlgorithm})
	processIntent(s, o, input.Intent{Action: input.ActionPrevAlgorithm})
	if s.Algorithm != generator.MessyBSPTree {
		t.Errorf("expected wrap-around to messy BSP, got %v", s.Algorithm)
	}

	processIntent(s, o, input.Intent{Action: input.ActionSelectAlgorithm, Code: "7"})
	if s.Algorithm != generator.MazeWithRooms {
		t.Errorf("expected maze with rooms, got %v", s.Algorithm)
	}

	before := s.Generation
	processIntent(s, o, input.Intent{Action: input.ActionSelectAlgorithm, Code: "nonsense"})
	if s.Generation != before {
		t.Error("unknown command regenerated the map")
	}

	processIntent(s, o, input.Intent{Action: input.ActionDump})
	if _, err := os.Stat(o.dump); err != nil {
		t.Error(err)
	}

	processIntent(s, o, input.Intent{Action: input.ActionClearMessages})
	if len(s.Messages) != 0 {
		t.Errorf("expected no messages after clear, got %v", s.Messages)
	}

	if !processIntent(s, o, input.Intent{Action: input.ActionQuit}) {
		t.Error("quit should quit")
	}
}

func TestRegenerate_TooSmallIsLogged(t *testing.T) {
	s := state.NewSession(40, 30)
	if err := s.Regenerate(1); err != nil {
		t.Fatal(err)
	}
	s.Width, s.Height = 4, 4
	regenerate(s, 2)
	if s.Grid.Width() != 40 {
		t.Error("failed regeneration replaced the map")
	}
	if last := s.Messages[len(s.Messages)-1]; !strings.Contains(last, "Map too small") {
		t.Errorf("unexpected message %q", last)
	}
}
