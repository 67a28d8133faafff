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
	"strings"
	"testing"

	"github.com/cybrota/avlviz/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderedTree(keys ...int) *avl.Tree {
	tree := avl.NewWithPolicy(avl.PolicyOrdered)
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func TestComputeLayoutHalvesOffsets(t *testing.T) {
	tree := orderedTree(40, 20, 60, 10, 30)
	layout := ComputeLayout(tree, 80, LayoutOptions{LevelHeight: 3})

	require.Len(t, layout.Nodes, 5)
	assert.Equal(t, 80, layout.Width)
	assert.Equal(t, 7, layout.Height)

	byKey := map[int]PlacedNode{}
	for _, n := range layout.Nodes {
		byKey[n.Key] = n
	}
	assert.Equal(t, PlacedNode{Key: 40, Label: "40", X: 40, Y: 0, Depth: 0}, byKey[40])
	assert.Equal(t, 20, byKey[20].X)
	assert.Equal(t, 60, byKey[60].X)
	assert.Equal(t, 3, byKey[20].Y)
	assert.Equal(t, 10, byKey[10].X)
	assert.Equal(t, 30, byKey[30].X)
	assert.Equal(t, 6, byKey[30].Y)
	assert.Equal(t, 2, byKey[30].Depth)

	// pre-order: parents come before their children
	assert.Equal(t, 40, layout.Nodes[0].Key)
	assert.Len(t, layout.Edges, 4)
	assert.Equal(t, Edge{FromX: 40, FromY: 0, ToX: 20, ToY: 3}, layout.Edges[0])
}

func TestComputeLayoutWidensForDeepTrees(t *testing.T) {
	tree := orderedTree(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	layout := ComputeLayout(tree, 10, LayoutOptions{LevelHeight: 2})

	// 4 levels of 2-digit labels need (2+1) * 2^3 columns
	assert.Equal(t, 24, layout.Width)

	seen := map[[2]int]bool{}
	for _, n := range layout.Nodes {
		assert.False(t, seen[[2]int{n.X, n.Y}], "two nodes at %d,%d", n.X, n.Y)
		seen[[2]int{n.X, n.Y}] = true
	}
}

func TestRenderLayout(t *testing.T) {
	layout := ComputeLayout(orderedTree(20, 10, 30), 11, LayoutOptions{LevelHeight: 2})

	want := strings.Join([]string{
		"    20",
		"   ┌─┴─┐",
		"  10  30",
	}, "\n")
	assert.Equal(t, want, RenderLayout(layout))
}

func TestRenderLayoutSingleChildAndBalance(t *testing.T) {
	// 6-column labels on two levels need a 14-column canvas
	layout := ComputeLayout(orderedTree(20, 10), 12, LayoutOptions{LevelHeight: 3, ShowBalance: true})
	assert.Equal(t, 14, layout.Width)

	want := strings.Join([]string{
		"    20(+1)",
		"    ┌──┘",
		"    │",
		" 10(+0)",
	}, "\n")
	assert.Equal(t, want, RenderLayout(layout))
}

func TestRenderEmptyTree(t *testing.T) {
	assert.Equal(t, emptyTreeText, RenderLayout(ComputeLayout(avl.New(), 40, LayoutOptions{})))
}
