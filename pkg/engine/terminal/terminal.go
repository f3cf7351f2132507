package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Map dimensions used when the terminal size is unknown: an 80x60 screen
// minus the text box below the map
const (
	DefaultMapWidth  = 80
	DefaultMapHeight = 50

	// TextBoxRows is the space kept under the map for the header and messages
	TextBoxRows = 10

	minMapSide = 20
)

// getSize is swapped out in tests
var getSize = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := getSize()
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
// Falls back to DefaultHeight if the height cannot be determined.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// MapSize returns map dimensions that fit the terminal with TextBoxRows to spare.
// Falls back to DefaultMapWidth x DefaultMapHeight when stdout is not a terminal.
func MapSize() (width, height int) {
	width, height, err := getSize()
	if err != nil {
		return DefaultMapWidth, DefaultMapHeight
	}
	return max(width, minMapSide), max(height-TextBoxRows, minMapSide)
}
