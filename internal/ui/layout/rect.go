package layout

// Rect is a screen rectangle in logical pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
