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
	"fmt"
	"time"

	"github.com/cybrota/avlviz/avl"
	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired renderings every 5 minutes
	layoutCacheCleanup = 5 * time.Minute
)

// NewLayoutCache creates a cache for rendered tree canvases. A ttl of zero
// disables expiry.
func NewLayoutCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		return cache.New(cache.NoExpiration, layoutCacheCleanup)
	}
	return cache.New(ttl, layoutCacheCleanup)
}

// cachedLayout is a canvas together with the tree revision it was drawn from.
type cachedLayout struct {
	revision uint64
	rendered string
}

// layoutCacheKey identifies one display slot. The revision is stored with the
// canvas rather than in the key, so each slot holds at most one canvas and a
// mutation replaces it instead of adding a new entry.
func layoutCacheKey(tree *avl.Tree, width int, opts LayoutOptions) string {
	return fmt.Sprintf("%p:%d:%d:%t", tree, width, opts.LevelHeight, opts.ShowBalance)
}

func CacheLayout(c *cache.Cache, key string, revision uint64, rendered string) {
	// Use Set instead of Add to allow overwriting
	c.Set(key, cachedLayout{revision: revision, rendered: rendered}, cache.DefaultExpiration)
}

// GetLayout returns the canvas stored under key if it was drawn at revision.
func GetLayout(c *cache.Cache, key string, revision uint64) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	entry, ok := val.(cachedLayout)
	if !ok || entry.revision != revision {
		return "", false
	}
	return entry.rendered, true
}

// RenderTreeCached returns the canvas for tree, computing it only when the
// tree or the display parameters changed.
func RenderTreeCached(c *cache.Cache, tree *avl.Tree, width int, opts LayoutOptions) string {
	key := layoutCacheKey(tree, width, opts)
	if rendered, ok := GetLayout(c, key, tree.Revision()); ok {
		return rendered
	}

	rendered := RenderLayout(ComputeLayout(tree, width, opts))
	CacheLayout(c, key, tree.Revision(), rendered)
	return rendered
}
