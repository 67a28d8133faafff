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

// Insert places key according to the tree policy and rebalances on the way
// back up. A key routed to the discard case leaves the tree untouched.
func (tree *Tree) Insert(key int) {
	var stored bool
	tree.root, stored = tree.insertInto(tree.root, key)
	if stored {
		tree.size++
		tree.revision++
	}
}

func (tree *Tree) insertInto(node *Node, key int) (*Node, bool) {
	if node == nil {
		return newNode(key), true
	}

	var stored bool
	switch tree.policy.route(key, node.key) {
	case routeLeft:
		node.left, stored = tree.insertInto(node.left, key)
	case routeRight:
		node.right, stored = tree.insertInto(node.right, key)
	case routeDiscard:
		return node, false
	}

	updateHeight(node)
	return tree.rebalanceInsert(node, key), stored
}

// rebalanceInsert picks the rotation from the side the key descended into
// below the heavy child. For distinct keys this is the usual
// key < child.key test; equal keys follow the policy's route.
func (tree *Tree) rebalanceInsert(node *Node, key int) *Node {
	balance := balanceFactor(node)

	if balance > 1 {
		if tree.policy.route(key, node.left.key) == routeLeft {
			return rotateRight(node)
		}
		// Left-Right
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	if balance < -1 {
		if tree.policy.route(key, node.right.key) != routeLeft {
			return rotateLeft(node)
		}
		// Right-Left
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
