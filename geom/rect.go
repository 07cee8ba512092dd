package geom

// Rect is an axis-aligned rectangle in cell coordinates.
// Right and Bottom edges are exclusive.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle from a position and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the leftmost column.
func (r Rect) Left() int { return r.X }

// Right returns the column one past the rightmost.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the topmost row.
func (r Rect) Top() int { return r.Y }

// Bottom returns the row one past the bottommost.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of cells covered.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Intersection returns the overlap of two rectangles.
// Returns the zero Rect when they do not overlap.
func (r Rect) Intersection(o Rect) Rect {
	x1 := max(r.Left(), o.Left())
	y1 := max(r.Top(), o.Top())
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
