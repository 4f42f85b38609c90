// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ctrie

import (
	"sync"

	"github.com/go-logr/logr"
)

// Trie is a byte-indexed prefix tree mapping keys to values of type T.
//
// A single mutex guards every operation, so each call is atomic with
// respect to every other call on the same Trie. Distinct Tries share
// nothing. The zero value is not usable; create one with NewTrie.
type Trie[T any] struct {
	mu sync.Mutex

	// root is created by the first insert and never pruned.
	root  *Node[T]
	size  int
	nodes int

	cache  *lookupCache[T]
	logger logr.Logger
}

// UpdateFn computes the new value for a key from its current value.
// found is false if the key holds no value yet.
type UpdateFn[T any] func(old T, found bool) T

func NewTrie[T any](opts ...Option) *Trie[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Trie[T]{
		cache:  newLookupCache[T](cfg.cacheSize),
		logger: cfg.logger,
	}
	if t.cache != nil {
		t.logger.V(1).Info("lookup cache enabled", "size", cfg.cacheSize)
	}
	return t
}

// Len is used to return the number of keys holding a value.
func (t *Trie[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.size
}

// Nodes returns the number of nodes below the root.
func (t *Trie[T]) Nodes() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.nodes
}

// Insert stores value under key, replacing any previous value. It returns
// false, leaving the trie untouched, if key is empty.
func (t *Trie[T]) Insert(key []byte, value T) bool {
	if len(key) == 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.walkOrCreate(key)
	if !n.hasValue() {
		t.size++
	}
	n.setValue(value)
	t.cache.refresh(key, value)
	return true
}

func (t *Trie[T]) InsertString(key string, value T) bool {
	return t.Insert([]byte(key), value)
}

// Get is used to look up a specific key, returning the value and if it
// was found. A node that only exists as a prefix of longer keys is not
// found.
func (t *Trie[T]) Get(key []byte) (T, bool) {
	var zero T
	if len(key) == 0 {
		return zero, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.cache.get(key); ok {
		return v, true
	}
	n := t.search(key)
	if n == nil {
		return zero, false
	}
	v, ok := n.getValue()
	if ok {
		t.cache.add(key, v)
	}
	return v, ok
}

func (t *Trie[T]) GetString(key string) (T, bool) {
	return t.Get([]byte(key))
}

// Update atomically replaces the value under key with fn(old, found) and
// returns the new value. fn runs with the trie locked and must not call
// back into it. It returns false without calling fn if key is empty.
func (t *Trie[T]) Update(key []byte, fn UpdateFn[T]) (T, bool) {
	var zero T
	if len(key) == 0 {
		return zero, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.walkOrCreate(key)
	old, found := n.getValue()
	value := fn(old, found)
	if !found {
		t.size++
	}
	n.setValue(value)
	t.cache.refresh(key, value)
	return value, true
}

func (t *Trie[T]) UpdateString(key string, fn UpdateFn[T]) (T, bool) {
	return t.Update([]byte(key), fn)
}

// Delete removes the value under key and prunes every node on its path
// that is left with neither a value nor children. It returns false, and
// changes nothing, if key is empty, unknown, or holds no value.
func (t *Trie[T]) Delete(key []byte) bool {
	pruned, nodes, ok := t.delete(key)
	if ok {
		t.logger.V(1).Info("pruned branch", "key", string(key), "pruned", pruned, "nodes", nodes)
	}
	return ok
}

func (t *Trie[T]) DeleteString(key string) bool {
	return t.Delete([]byte(key))
}

// Clear drops every node, leaving an empty trie.
func (t *Trie[T]) Clear() {
	t.mu.Lock()
	size, nodes := t.size, t.nodes
	t.root = nil
	t.size = 0
	t.nodes = 0
	t.cache.purge()
	t.mu.Unlock()

	t.logger.V(1).Info("cleared trie", "keys", size, "nodes", nodes)
}

func (t *Trie[T]) delete(key []byte) (int, int, bool) {
	if len(key) == 0 {
		return 0, 0, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.search(key)
	if n == nil || !n.hasValue() {
		return 0, 0, false
	}
	n.clearValue()
	t.size--
	t.cache.remove(key)

	// Walk leaf to root, detaching every dead node. A value or a surviving
	// sibling stops the chain; the root has no parent and is never dead.
	pruned := 0
	for n.isDead() {
		parent := n.getParent()
		if parent.getChild(n.getKey()) != n {
			panic("ctrie: node is not held by its parent")
		}
		parent.removeChild(n.getKey())
		t.nodes--
		pruned++
		n = parent
	}
	return pruned, t.nodes, true
}

// search follows key from the root and returns the node it ends at, or
// nil if some byte has no edge.
func (t *Trie[T]) search(key []byte) *Node[T] {
	n := t.root
	if n == nil {
		return nil
	}
	for _, c := range key {
		n = n.getChild(c)
		if n == nil {
			return nil
		}
	}
	return n
}

// walkOrCreate follows key from the root, creating the root and any
// missing edges, and returns the node key ends at.
func (t *Trie[T]) walkOrCreate(key []byte) *Node[T] {
	if t.root == nil {
		t.root = newNode[T](nil, 0)
	}
	n := t.root
	for _, c := range key {
		child := n.getChild(c)
		if child == nil {
			child = n.setChild(c, newNode(n, c))
			t.nodes++
		}
		n = child
	}
	return n
}
