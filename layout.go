// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/avlviz/avl"
)

const (
	// wider canvases are clipped; deep trees then overlap at the bottom
	maxLayoutWidth = 4096
	emptyTreeText  = "(empty tree)"
)

// LayoutOptions controls how the tree is laid out on a character canvas.
type LayoutOptions struct {
	LevelHeight int // rows from a parent label to its children's labels
	ShowBalance bool
}

// PlacedNode is a node label positioned on the canvas. X is the column of
// the label centre, Y its row.
type PlacedNode struct {
	Key   int
	Label string
	X, Y  int
	Depth int
}

// Edge joins a parent label to a child label.
type Edge struct {
	FromX, FromY int
	ToX, ToY     int
}

// TreeLayout holds everything needed to draw the tree; the tree itself keeps
// no coordinates.
type TreeLayout struct {
	Nodes  []PlacedNode
	Edges  []Edge
	Width  int
	Height int
}

func nodeLabel(n *avl.Node, showBalance bool) string {
	if showBalance {
		return fmt.Sprintf("%d(%+d)", n.Key(), n.Balance())
	}
	return strconv.Itoa(n.Key())
}

// requiredWidth is the narrowest canvas on which the deepest level does not
// overlap: nodes at depth d sit width/2^d apart.
func requiredWidth(tree *avl.Tree, labelWidth int) int {
	h := tree.Height()
	if h == 0 {
		return 0
	}
	w := labelWidth + 1
	for d := 1; d < h; d++ {
		w *= 2
		if w >= maxLayoutWidth {
			return maxLayoutWidth
		}
	}
	return w
}

func widestLabel(tree *avl.Tree, showBalance bool) int {
	widest := 0
	tree.PreOrder(func(n *avl.Node, _ int) bool {
		widest = max(widest, len(nodeLabel(n, showBalance)))
		return true
	})
	return widest
}

// ComputeLayout places the root at the centre of the canvas and each child
// half the parent's offset to the side, one level lower.
func ComputeLayout(tree *avl.Tree, width int, opts LayoutOptions) TreeLayout {
	if opts.LevelHeight < 2 {
		opts.LevelHeight = 2
	}

	width = max(width, requiredWidth(tree, widestLabel(tree, opts.ShowBalance)))
	layout := TreeLayout{Width: width}
	if tree.Root() == nil {
		return layout
	}

	layout.Height = (tree.Height()-1)*opts.LevelHeight + 1
	placeNode(&layout, tree.Root(), width/2, 0, width/4, 0, opts)
	return layout
}

func placeNode(layout *TreeLayout, n *avl.Node, x, y, offset, depth int, opts LayoutOptions) {
	layout.Nodes = append(layout.Nodes, PlacedNode{
		Key:   n.Key(),
		Label: nodeLabel(n, opts.ShowBalance),
		X:     x,
		Y:     y,
		Depth: depth,
	})

	childY := y + opts.LevelHeight
	if left := n.Left(); left != nil {
		layout.Edges = append(layout.Edges, Edge{FromX: x, FromY: y, ToX: x - offset, ToY: childY})
		placeNode(layout, left, x-offset, childY, offset/2, depth+1, opts)
	}
	if right := n.Right(); right != nil {
		layout.Edges = append(layout.Edges, Edge{FromX: x, FromY: y, ToX: x + offset, ToY: childY})
		placeNode(layout, right, x+offset, childY, offset/2, depth+1, opts)
	}
}

type canvas struct {
	cells  [][]rune
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", width))
	}
	return &canvas{cells: cells, width: width, height: height}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

func (c *canvas) text(x, y int, s string) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r)
	}
}

func (c *canvas) String() string {
	lines := make([]string, c.height)
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// RenderLayout paints the layout with box-drawing connectors:
//
//	     20
//	  ┌──┴──┐
//	  10    30
func RenderLayout(layout TreeLayout) string {
	if len(layout.Nodes) == 0 {
		return emptyTreeText
	}

	c := newCanvas(layout.Width, layout.Height)

	const (
		hasLeft = 1 << iota
		hasRight
	)
	junctions := map[[2]int]int{}

	for _, e := range layout.Edges {
		row := e.FromY + 1
		switch {
		case e.ToX < e.FromX:
			for x := e.ToX + 1; x < e.FromX; x++ {
				c.set(x, row, '─')
			}
			c.set(e.ToX, row, '┌')
			junctions[[2]int{e.FromX, row}] |= hasLeft
		case e.ToX > e.FromX:
			for x := e.FromX + 1; x < e.ToX; x++ {
				c.set(x, row, '─')
			}
			c.set(e.ToX, row, '┐')
			junctions[[2]int{e.FromX, row}] |= hasRight
		default:
			c.set(e.ToX, row, '│')
		}
		for y := row + 1; y < e.ToY; y++ {
			c.set(e.ToX, y, '│')
		}
	}

	for at, sides := range junctions {
		switch sides {
		case hasLeft | hasRight:
			c.set(at[0], at[1], '┴')
		case hasLeft:
			c.set(at[0], at[1], '┘')
		case hasRight:
			c.set(at[0], at[1], '└')
		}
	}

	for _, n := range layout.Nodes {
		c.text(n.X-len(n.Label)/2, n.Y, n.Label)
	}

	return c.String()
}
