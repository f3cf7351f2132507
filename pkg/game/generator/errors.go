package generator

import (
	"errors"
	"fmt"
)

// Errors returned before any grid is allocated
var (
	ErrInvalidDimensions = errors.New("invalid map dimensions")
	ErrInvalidConfig     = errors.New("invalid generator config")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
)

// checkDimensions fails unless width and height are positive and at least the given minimums
func checkDimensions(name string, width, height, minWidth, minHeight int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %s needs positive dimensions, got %dx%d", ErrInvalidDimensions, name, width, height)
	}
	if width < minWidth || height < minHeight {
		return fmt.Errorf("%w: %s needs at least %dx%d, got %dx%d", ErrInvalidDimensions, name, minWidth, minHeight, width, height)
	}
	return nil
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
