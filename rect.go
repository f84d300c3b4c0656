package boxrect

import "fmt"

// Rect is a snapshot of an element's layout box.
//
// Right-Left == Width and Bottom-Top == Height hold right after
// SetFromElement. Fields may be changed freely afterwards; nothing
// re-normalizes them.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Width  float64
	Height float64

	// Aspect is Width / Height. A zero Height gives NaN or ±Inf.
	Aspect float64
}

// FromElement returns a new Rect for e's current layout box.
func FromElement(e Element) Rect {
	var r Rect
	r.SetFromElement(e)
	return r
}

// SetFromElement overwrites every field of r from e's current layout box.
func (r *Rect) SetFromElement(e Element) {
	r.Left = e.OffsetLeft()
	r.Top = e.OffsetTop()
	r.Width = e.ClientWidth()
	r.Height = e.ClientHeight()
	r.Right = r.Left + r.Width
	r.Bottom = r.Top + r.Height
	r.Aspect = r.Width / r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("{left:%g top:%g right:%g bottom:%g width:%g height:%g aspect:%g}",
		r.Left, r.Top, r.Right, r.Bottom, r.Width, r.Height, r.Aspect)
}
