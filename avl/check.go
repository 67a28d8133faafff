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

import (
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("avl: key order violated")
	ErrHeight  = errors.New("avl: stale height")
	ErrBalance = errors.New("avl: node out of balance")
)

// Verify walks the whole tree and reports the first broken invariant: key
// order, height bookkeeping or AVL balance. Keys may repeat only under
// PolicyLiteral.
func (tree *Tree) Verify() error {
	_, err := tree.verify(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n := countNodes(tree.root); n != tree.size {
		return fmt.Errorf("avl: size %d but %d nodes reachable", tree.size, n)
	}
	return nil
}

// verify returns the computed height of n. lo and hi bound the keys allowed
// in the subtree.
func (tree *Tree) verify(n *Node, lo, hi *int) (int, error) {
	if n == nil {
		return 0, nil
	}

	strict := tree.policy == PolicyOrdered
	if lo != nil && (n.key < *lo || (strict && n.key == *lo)) {
		return 0, fmt.Errorf("%w: key %d below lower bound %d", ErrOrder, n.key, *lo)
	}
	if hi != nil && (n.key > *hi || (strict && n.key == *hi)) {
		return 0, fmt.Errorf("%w: key %d above upper bound %d", ErrOrder, n.key, *hi)
	}

	lh, err := tree.verify(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rh, err := tree.verify(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("%w: node %d stores %d, computed %d", ErrHeight, n.key, n.height, h)
	}
	if b := lh - rh; b > 1 || b < -1 {
		return 0, fmt.Errorf("%w: node %d has balance %+d", ErrBalance, n.key, b)
	}
	return h, nil
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}
