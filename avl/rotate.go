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

// rotateRight promotes y.left. Heights are recomputed bottom-up: y, then the
// new subtree root.
func rotateRight(y *Node) *Node {
	if y == nil || y.left == nil {
		return y
	}

	x := y.left
	y.left = x.right
	x.right = y

	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft is the mirror of rotateRight and promotes x.right.
func rotateLeft(x *Node) *Node {
	if x == nil || x.right == nil {
		return x
	}

	y := x.right
	x.right = y.left
	y.left = x

	updateHeight(x)
	updateHeight(y)

	return y
}
