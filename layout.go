// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxrect

import "github.com/grindlemire/boxrect/internal/layout"

// Direction specifies the axis children flow along.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// LayoutRect is an integer box in layout units.
type LayoutRect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Point represents an x/y coordinate.
type Point = layout.Point

// LayoutResult holds the boxes computed for a node.
type LayoutResult = layout.Layout

// Node is a box in a layout tree. It implements Element.
type Node = layout.Node

// NewNode creates a detached node with the given style.
func NewNode(style LayoutStyle) *Node {
	return layout.New(style)
}

// DefaultLayoutStyle returns an auto-sized row with no spacing.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// Calculate lays out root and its descendants within the available space.
func Calculate(root *Node, availableWidth, availableHeight int) {
	layout.Calculate(root, availableWidth, availableHeight)
}

// Fixed creates a Value of n layout units.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value sized by the parent's flow.
func Auto() Value {
	return layout.Auto()
}

// NewLayoutRect creates a LayoutRect from position and size.
func NewLayoutRect(x, y, width, height int) LayoutRect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges with individual values in CSS order.
func EdgeTRBL(top, right, bottom, left int) Edges {
	return layout.EdgeTRBL(top, right, bottom, left)
}
