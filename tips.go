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
	"math/rand"
)

// Short notes rotated through the classic viewer's banner.
var tips = []string{
	"Insert 30, 20, 10 to watch a single right rotation",
	"Insert 30, 10, 10 under the literal policy for a left-right rotation",
	"Under the literal policy a key greater than the root is discarded",
	"Equal keys descend right under the literal policy and are stored again",
	"Deleting a node with two children copies up its in-order successor",
	"Deleting a missing key leaves the tree exactly as it was",
	"Every node keeps |height(left) - height(right)| <= 1",
	"Searching never changes a height or a balance factor",
	"Set tree.insert_policy: ordered in ~/.avlviz.yaml for conventional ordering",
	"Press ctrl+b in the interactive shell to show balance factors",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(tips)
}
