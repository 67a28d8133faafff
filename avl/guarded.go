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

import "sync"

// Guarded serialises access to a Tree. Mutations take the write lock;
// Search and the read helpers share the read lock since they never mutate.
type Guarded struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewGuarded wraps tree. The caller must stop using tree directly.
func NewGuarded(tree *Tree) *Guarded {
	return &Guarded{tree: tree}
}

// Insert adds key under the write lock.
func (g *Guarded) Insert(key int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.Insert(key)
}

// Delete removes one node holding key under the write lock.
func (g *Guarded) Delete(key int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.Delete(key)
}

// Search reports whether key is present, under the read lock.
func (g *Guarded) Search(key int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Search(key)
}

// Stats is a consistent snapshot of the tree's size, height and revision.
type Stats struct {
	Len      int
	Height   int
	Revision uint64
}

// Stats returns size, height and revision read under one lock.
func (g *Guarded) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Stats{Len: g.tree.Len(), Height: g.tree.Height(), Revision: g.tree.Revision()}
}

// Read runs fn with the read lock held. fn must not mutate the tree or keep
// node references after returning.
func (g *Guarded) Read(fn func(t *Tree)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.tree)
}

// Write runs fn with the write lock held.
func (g *Guarded) Write(fn func(t *Tree)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.tree)
}
