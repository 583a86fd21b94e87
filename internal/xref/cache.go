// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xref

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pdiddy/screenref/internal/catalog"
)

const defaultCacheSize = 4

// Cache memoizes indexes by catalog fingerprint. An index is built on the
// first request for a content set and reused until that set is evicted.
type Cache struct {
	indexes *lru.Cache[string, *Index]
	opts    []Option
	o       options
}

// NewCache returns a cache holding up to size indexes. A non-positive size
// uses the default.
func NewCache(size int, opts ...Option) (*Cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	indexes, err := lru.New[string, *Index](size)
	if err != nil {
		return nil, fmt.Errorf("creating index cache: %w", err)
	}
	return &Cache{indexes: indexes, opts: opts, o: buildOptions(opts)}, nil
}

// Get returns the index for cat, building it if this content set has not
// been seen or was evicted.
func (c *Cache) Get(cat *catalog.Catalog) *Index {
	key := cat.Fingerprint()
	if idx, ok := c.indexes.Get(key); ok {
		c.o.log.WithField("fingerprint", key[:12]).Debug("index cache hit")
		return idx
	}
	c.o.log.WithField("fingerprint", key[:12]).Debug("index cache miss")
	idx := Build(cat, c.opts...)
	c.indexes.Add(key, idx)
	return idx
}

// Len returns the number of cached indexes.
func (c *Cache) Len() int {
	return c.indexes.Len()
}
