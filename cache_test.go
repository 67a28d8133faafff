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
	"testing"
	"time"

	"github.com/cybrota/avlviz/avl"
)

func TestCacheLayoutAndGetLayout(t *testing.T) {
	c := NewLayoutCache(time.Minute)
	key := "tree:80:3:false"
	rendered := "  10\n ┌┘\n 5"

	// Initially, GetLayout should miss for an unknown key.
	if got, ok := GetLayout(c, key, 1); ok || got != "" {
		t.Errorf("GetLayout(%q) = %q, %t; want a miss", key, got, ok)
	}

	CacheLayout(c, key, 1, rendered)

	if got, ok := GetLayout(c, key, 1); !ok || got != rendered {
		t.Errorf("GetLayout(%q) = %q, %t; want %q", key, got, ok, rendered)
	}
	if _, ok := GetLayout(c, key, 2); ok {
		t.Error("GetLayout served a canvas drawn at another revision")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := NewLayoutCache(100 * time.Millisecond)
	key := "expiring"

	CacheLayout(c, key, 0, "soon gone")
	if got, _ := GetLayout(c, key, 0); got != "soon gone" {
		t.Errorf("GetLayout(%q) = %q; want %q", key, got, "soon gone")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, ok := GetLayout(c, key, 0); ok {
		t.Errorf("After expiration, GetLayout(%q) still hit", key)
	}
}

func TestRenderTreeCachedFollowsRevision(t *testing.T) {
	c := NewLayoutCache(0)
	tree := avl.NewWithPolicy(avl.PolicyOrdered)
	tree.Insert(10)
	opts := LayoutOptions{LevelHeight: 2}

	first := RenderTreeCached(c, tree, 20, opts)
	if first != "         10" {
		t.Errorf("first render = %q", first)
	}
	if c.ItemCount() != 1 {
		t.Errorf("ItemCount = %d, want 1", c.ItemCount())
	}

	// a search keeps the revision, so the cached canvas is reused
	tree.Search(10)
	RenderTreeCached(c, tree, 20, opts)
	if c.ItemCount() != 1 {
		t.Errorf("ItemCount after search = %d, want 1", c.ItemCount())
	}

	tree.Insert(5)
	second := RenderTreeCached(c, tree, 20, opts)
	if second == first {
		t.Error("render was not refreshed after an insert")
	}

	if _, expires, ok := c.GetWithExpiration(layoutCacheKey(tree, 20, opts)); !ok || !expires.IsZero() {
		t.Errorf("expected a non-expiring entry, got ok=%t expires=%v", ok, expires)
	}
}

func TestRenderTreeCachedReplacesStaleCanvas(t *testing.T) {
	c := NewLayoutCache(0)
	tree := avl.NewWithPolicy(avl.PolicyOrdered)
	opts := LayoutOptions{LevelHeight: 2}

	for k := 1; k <= 50; k++ {
		tree.Insert(k)
		RenderTreeCached(c, tree, 40, opts)
	}
	for k := 1; k <= 20; k++ {
		tree.Delete(k)
		RenderTreeCached(c, tree, 40, opts)
	}

	// one slot per tree, width and options however many revisions were drawn
	if c.ItemCount() != 1 {
		t.Errorf("ItemCount = %d, want 1", c.ItemCount())
	}

	opts.ShowBalance = true
	RenderTreeCached(c, tree, 40, opts)
	if c.ItemCount() != 2 {
		t.Errorf("ItemCount with balance labels = %d, want 2", c.ItemCount())
	}

	want := RenderLayout(ComputeLayout(tree, 40, opts))
	if got := RenderTreeCached(c, tree, 40, opts); got != want {
		t.Errorf("cached canvas differs from a fresh rendering")
	}
}
