package state

import (
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"

	"dungeonlab/pkg/engine/world"
	"dungeonlab/pkg/game/generator"
)

// maxMessages is how many log lines a session keeps
const maxMessages = 5

// Session holds the map currently being looked at and how it was made
type Session struct {
	Algorithm generator.Algorithm
	Generator generator.GridGenerator

	Width  int
	Height int

	// Seed is the seed of the current Grid
	Seed int64

	Grid *world.Grid

	Messages []string

	// Generation counts the maps built in this session
	Generation int

	// Used records every algorithm that produced a map
	Used mapset.Set[generator.Algorithm]
}

// NewSession creates a session for maps of the given size using the default generator
func NewSession(width, height int) *Session {
	return &Session{
		Algorithm: generator.BSPTree,
		Generator: generator.DefaultGenerator,
		Width:     width,
		Height:    height,
		Messages:  make([]string, 0),
		Used:      mapset.New[generator.Algorithm](),
	}
}

// Use switches the session to another algorithm with its default settings
func (s *Session) Use(alg generator.Algorithm) error {
	g, err := generator.New(alg)
	if err != nil {
		return err
	}
	s.Algorithm = alg
	s.Generator = g
	return nil
}

// Regenerate builds a new map with the current generator. A zero seed picks one from the clock.
func (s *Session) Regenerate(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid, err := generator.GenerateSeeded(s.Generator, s.Width, s.Height, seed)
	if err != nil {
		return err
	}

	s.Grid = grid
	s.Seed = seed
	s.Generation++
	s.Used.Put(s.Algorithm)
	s.AddMessage(fmt.Sprintf("%s %dx%d seed %d", s.Generator.Name(), s.Width, s.Height, seed))
	return nil
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
