package layout

// Edges is spacing on four sides, used for margin, border and padding.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL returns Edges in CSS order: top, right, bottom, left.
func EdgeTRBL(top, right, bottom, left int) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
