package boxrect

// Element is anything that reports a layout box.
//
// Offsets are measured from the element's positioning ancestor. Client
// size is the padding box: borders are excluded, padding is included.
// An element that has not been laid out reports zeros.
type Element interface {
	OffsetLeft() float64
	OffsetTop() float64
	ClientWidth() float64
	ClientHeight() float64
}

var _ Element = (*Node)(nil)
