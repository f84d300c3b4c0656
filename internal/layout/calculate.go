package layout

import "github.com/grindlemire/boxrect/internal/debug"

// Calculate lays out root and all of its descendants within
// availableWidth x availableHeight. The root's border box sits inside its
// margin; an auto root fills the remaining space.
func Calculate(root *Node, availableWidth, availableHeight int) {
	s := root.style
	width := s.Width.Resolve(availableWidth, availableWidth-s.Margin.Horizontal())
	height := s.Height.Resolve(availableHeight, availableHeight-s.Margin.Vertical())
	place(root, NewRect(s.Margin.Left, s.Margin.Top, width, height))
	debug.Log("layout: root=%dx%d nodes=%d", width, height, count(root))
}

func place(n *Node, rect Rect) {
	padding := rect.Inset(n.style.Border)
	n.layout = Layout{
		Rect:        rect,
		PaddingRect: padding,
		ContentRect: padding.Inset(n.style.Padding),
	}
	n.laidOut = true
	flow(n)
}

// flow positions the children of n along its direction. Fixed and percent
// sizes are taken first; auto sizes split what is left, with any remainder
// going one unit at a time to the earliest auto children.
func flow(n *Node) {
	if len(n.children) == 0 {
		return
	}
	content := n.layout.ContentRect
	isRow := n.style.Direction == Row

	mainAvail, crossAvail := content.Height, content.Width
	if isRow {
		mainAvail, crossAvail = content.Width, content.Height
	}

	sizes := make([]int, len(n.children))
	used := n.style.Gap * (len(n.children) - 1)
	autos := 0
	for i, child := range n.children {
		main, marginMain := mainAxis(child.style, isRow)
		used += marginMain
		if main.IsAuto() {
			sizes[i] = -1
			autos++
			continue
		}
		sizes[i] = main.Resolve(mainAvail, 0)
		used += sizes[i]
	}

	if autos > 0 {
		leftover := max(mainAvail-used, 0)
		share, extra := leftover/autos, leftover%autos
		for i := range sizes {
			if sizes[i] >= 0 {
				continue
			}
			sizes[i] = share
			if extra > 0 {
				sizes[i]++
				extra--
			}
		}
	}

	cursor := content.Y
	if isRow {
		cursor = content.X
	}
	for i, child := range n.children {
		m := child.style.Margin
		if isRow {
			cross := child.style.Height.Resolve(crossAvail, crossAvail-m.Vertical())
			cursor += m.Left
			place(child, NewRect(cursor, content.Y+m.Top, sizes[i], cross))
			cursor += sizes[i] + m.Right + n.style.Gap
		} else {
			cross := child.style.Width.Resolve(crossAvail, crossAvail-m.Horizontal())
			cursor += m.Top
			place(child, NewRect(content.X+m.Left, cursor, cross, sizes[i]))
			cursor += sizes[i] + m.Bottom + n.style.Gap
		}
	}
}

// mainAxis returns the size value and total margin along the flow axis.
func mainAxis(s Style, isRow bool) (Value, int) {
	if isRow {
		return s.Width, s.Margin.Horizontal()
	}
	return s.Height, s.Margin.Vertical()
}

func count(n *Node) int {
	total := 1
	for _, child := range n.children {
		total += count(child)
	}
	return total
}
