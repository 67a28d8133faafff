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

// Delete removes one node holding key. Deleting a missing key is a no-op.
func (tree *Tree) Delete(key int) {
	var removed bool
	tree.root, removed = deleteFrom(tree.root, key)
	if removed {
		tree.size--
		tree.revision++
	}
}

func deleteFrom(node *Node, key int) (*Node, bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < node.key:
		node.left, removed = deleteFrom(node.left, key)
	case key > node.key:
		node.right, removed = deleteFrom(node.right, key)
	default:
		// zero or one child: splice the node out
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}

		// two children: take over the in-order successor's key, then
		// remove the successor, which has no left child
		successor := findMin(node.right)
		node.key = successor.key
		node.right, removed = deleteFrom(node.right, successor.key)
	}

	updateHeight(node)
	return rebalanceDelete(node), removed
}

func findMin(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

func rebalanceDelete(node *Node) *Node {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
