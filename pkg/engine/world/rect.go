package world

// Rect is an axis-aligned rectangle in grid coordinates with X2 > X1 and Y2 > Y1.
// Rooms built from a Rect carve the cells strictly between the edges.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle at x/y with the given width and height
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns X2-X1
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns Y2-Y1
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Center returns the integer midpoint of the rectangle
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// CenterPoint returns Center as a Point
func (r Rect) CenterPoint() Point {
	x, y := r.Center()
	return Point{X: x, Y: y}
}

// Intersects returns true if the closed rectangles overlap or share an edge
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether p lies inside the closed rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}
