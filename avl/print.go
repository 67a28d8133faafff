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
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Print writes a sideways ASCII picture of the tree to w, right subtree on
// top. With showBalance each key is followed by its height and balance.
func (tree *Tree) Print(w io.Writer, showBalance bool) error {
	if tree.root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return printNode(w, tree.root, "", branchRoot, showBalance)
}

func printNode(w io.Writer, n *Node, prefix string, br branch, showBalance bool) error {
	if n.right != nil {
		t := "       "
		if br == branchLeft {
			t = "|      "
		}
		if err := printNode(w, n.right, prefix+t, branchRight, showBalance); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case branchRoot:
		edge = "|------+ "
	case branchLeft:
		edge = "\\------+ "
	case branchRight:
		edge = "/------+ "
	}

	var err error
	if showBalance {
		_, err = fmt.Fprintf(w, "%s%s%d h=%d b=%+d\n", prefix, edge, n.key, n.height, balanceFactor(n))
	} else {
		_, err = fmt.Fprintf(w, "%s%s%d\n", prefix, edge, n.key)
	}
	if err != nil {
		return err
	}

	if n.left != nil {
		t := "       "
		if br == branchRight {
			t = "|      "
		}
		return printNode(w, n.left, prefix+t, branchLeft, showBalance)
	}
	return nil
}
