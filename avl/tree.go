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

// Tree owns every node reachable from its root.
type Tree struct {
	root     *Node
	policy   InsertPolicy
	size     int
	revision uint64
}

// New returns an empty tree using PolicyLiteral.
func New() *Tree {
	return &Tree{policy: PolicyLiteral}
}

// NewWithPolicy returns an empty tree that routes inserted keys with p.
func NewWithPolicy(p InsertPolicy) *Tree {
	return &Tree{policy: p}
}

// Policy reports the insertion policy of the tree.
func (tree *Tree) Policy() InsertPolicy { return tree.policy }

// Root exposes the root for read-only traversal. Callers must not keep it
// across a mutation.
func (tree *Tree) Root() *Node { return tree.root }

// Len is the number of stored nodes, repeated keys included.
func (tree *Tree) Len() int { return tree.size }

// Height of the whole tree, 0 when empty.
func (tree *Tree) Height() int { return height(tree.root) }

// Revision increases every time Insert or Delete changes the tree.
func (tree *Tree) Revision() uint64 { return tree.revision }

// Clear drops every node.
func (tree *Tree) Clear() {
	if tree.root == nil {
		return
	}
	tree.root = nil
	tree.size = 0
	tree.revision++
}
