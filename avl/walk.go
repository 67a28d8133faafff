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

package avl

// Visit is called once per node with its depth below the root (root is 0).
// Returning false stops the walk.
type Visit func(n *Node, depth int) bool

// PreOrder visits parents before children, left before right. This is the
// order a renderer needs to place a parent before drawing lines to its
// children.
func (tree *Tree) PreOrder(fn Visit) {
	preOrder(tree.root, 0, fn)
}

func preOrder(n *Node, depth int, fn Visit) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	if !preOrder(n.left, depth+1, fn) {
		return false
	}
	return preOrder(n.right, depth+1, fn)
}

// InOrder visits nodes in ascending key order.
func (tree *Tree) InOrder(fn Visit) {
	inOrder(tree.root, 0, fn)
}

func inOrder(n *Node, depth int, fn Visit) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, depth+1, fn) {
		return false
	}
	if !fn(n, depth) {
		return false
	}
	return inOrder(n.right, depth+1, fn)
}

// Keys returns every stored key in ascending order.
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.size)
	tree.InOrder(func(n *Node, _ int) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}
