package layout

import "slices"

// Node is a box in a layout tree. It owns its children directly.
type Node struct {
	style    Style
	layout   Layout
	laidOut  bool
	parent   *Node
	children []*Node
}

// New creates a detached node with the given style.
func New(style Style) *Node {
	return &Node{style: style}
}

// AddChild appends children to this node, detaching each from any
// previous parent first.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// RemoveChild removes a child from this node and clears the layout of its
// subtree. Returns true if the child was found.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	child.reset()
	return true
}

func (n *Node) reset() {
	n.layout = Layout{}
	n.laidOut = false
	for _, child := range n.children {
		child.reset()
	}
}

// Children returns the child nodes in flow order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Style returns the node's layout style.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle replaces the node's layout style. It takes effect on the next
// Calculate.
func (n *Node) SetStyle(style Style) {
	n.style = style
}

// Layout returns the last computed layout. It is the zero Layout until
// the node has been through Calculate.
func (n *Node) Layout() Layout {
	return n.layout
}

// --- Element measurements ---

// Offset returns the border-box origin relative to the parent's padding
// box. Roots report their border-box origin; nodes that were never laid
// out report (0, 0).
func (n *Node) Offset() Point {
	if !n.laidOut {
		return Point{}
	}
	origin := n.layout.Rect.Origin()
	if n.parent == nil || !n.parent.laidOut {
		return origin
	}
	return origin.Sub(n.parent.layout.PaddingRect.Origin())
}

// OffsetLeft returns the horizontal component of Offset.
func (n *Node) OffsetLeft() float64 {
	return float64(n.Offset().X)
}

// OffsetTop returns the vertical component of Offset.
func (n *Node) OffsetTop() float64 {
	return float64(n.Offset().Y)
}

// ClientWidth returns the padding-box width: border excluded, padding
// included.
func (n *Node) ClientWidth() float64 {
	return float64(n.layout.PaddingRect.Width)
}

// ClientHeight returns the padding-box height.
func (n *Node) ClientHeight() float64 {
	return float64(n.layout.PaddingRect.Height)
}
