// Package templates caches the row templates of a message list by the
// identifier of their layout options.
package templates

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/killallgit/chatlist/pkg/layoutopts"
)

// DefaultSize bounds a cache created with a non-positive size.
const DefaultSize = 64

// Cache is a bounded, least recently used set of templates. It is owned by
// the view that renders the list and dropped with it.
type Cache[T any] struct {
	entries *lru.Cache[string, T]
}

func New[T any](size int) (*Cache[T], error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, T](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create template cache: %w", err)
	}
	return &Cache[T]{entries: entries}, nil
}

// Get returns the template for options, building and storing it on a miss.
// A nil cache builds every time.
func (c *Cache[T]) Get(options layoutopts.Options, build func(layoutopts.Options) T) T {
	if c == nil {
		return build(options)
	}
	key := options.Identifier()
	if cached, ok := c.entries.Get(key); ok {
		return cached
	}
	template := build(options)
	c.entries.Add(key, template)
	return template
}

func (c *Cache[T]) Contains(options layoutopts.Options) bool {
	if c == nil {
		return false
	}
	return c.entries.Contains(options.Identifier())
}

// Identifiers lists the cached keys, oldest first.
func (c *Cache[T]) Identifiers() []string {
	if c == nil {
		return nil
	}
	return c.entries.Keys()
}

func (c *Cache[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// Purge drops every template.
func (c *Cache[T]) Purge() {
	if c == nil {
		return
	}
	c.entries.Purge()
}
