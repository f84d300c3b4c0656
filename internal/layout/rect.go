package layout

// Rect is an axis-aligned box in layout units. X and Y are the top-left
// corner; Right and Bottom are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset shrinks the rect by e on each side. Width and height stop at zero.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max(r.Width-e.Horizontal(), 0),
		Height: max(r.Height-e.Vertical(), 0),
	}
}
