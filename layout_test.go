package boxrect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromElement_LayoutTree(t *testing.T) {
	root := NewNode(LayoutStyle{
		Width:     Fixed(120),
		Height:    Fixed(60),
		Direction: Column,
		Border:    EdgeAll(1),
		Padding:   EdgeAll(1),
	})
	toolbar := NewNode(LayoutStyle{Width: Auto(), Height: Fixed(4)})
	canvas := NewNode(LayoutStyle{
		Width:  Auto(),
		Height: Auto(),
		Margin: EdgeTRBL(2, 0, 0, 0),
		Border: EdgeAll(1),
	})
	root.AddChild(toolbar, canvas)
	Calculate(root, 200, 200)

	type tc struct {
		node     *Node
		expected Rect
	}

	tests := map[string]tc{
		"root": {
			node:     root,
			expected: Rect{Left: 0, Top: 0, Right: 118, Bottom: 58, Width: 118, Height: 58, Aspect: 118.0 / 58.0},
		},
		"toolbar inside root padding": {
			node:     toolbar,
			expected: Rect{Left: 1, Top: 1, Right: 117, Bottom: 5, Width: 116, Height: 4, Aspect: 29},
		},
		"canvas below toolbar and margin": {
			node:     canvas,
			expected: Rect{Left: 1, Top: 7, Right: 115, Bottom: 55, Width: 114, Height: 48, Aspect: 114.0 / 48.0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := FromElement(tt.node)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromElement_DetachedNode(t *testing.T) {
	n := NewNode(DefaultLayoutStyle())

	got := FromElement(n)

	assert.Zero(t, got.Left)
	assert.Zero(t, got.Top)
	assert.Zero(t, got.Right)
	assert.Zero(t, got.Bottom)
	assert.Zero(t, got.Width)
	assert.Zero(t, got.Height)
	assert.True(t, math.IsNaN(got.Aspect))
}

func TestSetFromElement_FollowsRelayout(t *testing.T) {
	root := NewNode(LayoutStyle{Width: Fixed(40), Height: Fixed(10)})
	child := NewNode(DefaultLayoutStyle())
	root.AddChild(child)
	Calculate(root, 100, 100)

	var r Rect
	r.SetFromElement(child)
	require.Equal(t, 4.0, r.Aspect)

	root.SetStyle(LayoutStyle{Width: Fixed(20), Height: Fixed(10)})
	before := r
	Calculate(root, 100, 100)

	assert.Equal(t, 4.0, before.Aspect, "snapshots do not track layout changes")
	r.SetFromElement(child)
	assert.Equal(t, Rect{Right: 20, Bottom: 10, Width: 20, Height: 10, Aspect: 2}, r)
}
