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

// Package avl implements a height-balanced binary search tree over int keys.
//
// A Tree is not safe for concurrent use. Wrap it in a Guarded when more than
// one goroutine touches the same tree.
//
// Keys are routed on insertion according to an InsertPolicy. The default,
// PolicyLiteral, discards keys greater than the node being visited and sends
// equal keys into the right subtree. PolicyOrdered is the conventional
// alternative: equal keys are discarded and greater keys descend right.
package avl
