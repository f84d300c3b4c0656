package layout

// Direction is the axis children flow along.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Style holds the layout properties of a node.
type Style struct {
	Width  Value
	Height Value

	Direction Direction
	Gap       int // Space between children on the main axis

	Margin  Edges
	Border  Edges
	Padding Edges
}

// DefaultStyle returns an auto-sized row with no spacing.
func DefaultStyle() Style {
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		Direction: Row,
	}
}
