package renderer

import (
	"fmt"
	"io"

	"dungeonlab/pkg/engine/world"
	"dungeonlab/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleTitle
	StyleLabel
	StyleSubtle
	StyleDenied
)

// Renderer defines the interface for map output backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame writes the session header, its map and the message pane
	RenderFrame(w io.Writer, s *state.Session)

	// RenderGrid writes only the map, one row per line
	RenderGrid(w io.Writer, grid *world.Grid)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders the session using the current renderer
func RenderFrame(w io.Writer, s *state.Session) {
	if Current != nil {
		Current.RenderFrame(w, s)
	}
}

// RenderGrid renders a bare map. Without a renderer it falls back to the plain text form.
func RenderGrid(w io.Writer, grid *world.Grid) {
	if Current != nil {
		Current.RenderGrid(w, grid)
		return
	}
	io.WriteString(w, grid.String())
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup. Without a renderer the markup is left in place.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return fmt.Sprintf(msg, args...)
}
