// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ctrie

import "github.com/hashicorp/golang-lru/v2/simplelru"

// lookupCache remembers values of recently used keys. It is not safe for
// concurrent use on its own; every call happens under the trie mutex.
// A nil *lookupCache is a valid, disabled cache.
type lookupCache[T any] struct {
	lru *simplelru.LRU[string, T]
}

func newLookupCache[T any](size int) *lookupCache[T] {
	if size <= 0 {
		return nil
	}
	lru, err := simplelru.NewLRU[string, T](size, nil)
	if err != nil {
		panic(err)
	}
	return &lookupCache[T]{lru: lru}
}

func (c *lookupCache[T]) get(key []byte) (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	return c.lru.Get(string(key))
}

func (c *lookupCache[T]) add(key []byte, value T) {
	if c == nil {
		return
	}
	c.lru.Add(string(key), value)
}

// refresh updates key only if it is already cached, so writes do not evict
// hot read entries.
func (c *lookupCache[T]) refresh(key []byte, value T) {
	if c == nil {
		return
	}
	if c.lru.Contains(string(key)) {
		c.lru.Add(string(key), value)
	}
}

func (c *lookupCache[T]) remove(key []byte) {
	if c == nil {
		return
	}
	c.lru.Remove(string(key))
}

func (c *lookupCache[T]) purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

func (c *lookupCache[T]) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
