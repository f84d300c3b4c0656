package layout

// Layout holds the boxes computed for a node by Calculate.
type Layout struct {
	// Rect is the border box, placed inside the parent's content box
	// after applying this node's margin.
	Rect Rect

	// PaddingRect is Rect minus border. Offsets of children are measured
	// from its origin and its size is the node's client size.
	PaddingRect Rect

	// ContentRect is PaddingRect minus padding, where children are placed.
	ContentRect Rect
}
