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

// Search reports whether a node holding key is reachable by ordered descent.
func (tree *Tree) Search(key int) bool {
	return searchNode(tree.root, key)
}

func searchNode(node *Node, key int) bool {
	if node == nil {
		return false
	}
	if key == node.key {
		return true
	}
	if key < node.key {
		return searchNode(node.left, key)
	}
	return searchNode(node.right, key)
}

// Min returns the smallest key, ok is false for an empty tree.
func (tree *Tree) Min() (key int, ok bool) {
	if tree.root == nil {
		return 0, false
	}
	return findMin(tree.root).key, true
}

// Max returns the largest key, ok is false for an empty tree.
func (tree *Tree) Max() (key int, ok bool) {
	node := tree.root
	if node == nil {
		return 0, false
	}
	for node.right != nil {
		node = node.right
	}
	return node.key, true
}
