package scene

// Rect is where a surface is displayed, in host (window or terminal) units.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether (x, y) falls inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
