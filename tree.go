// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/constraints"
)

// Trie owns a root node and keeps track of how many keys it holds. The zero
// value is an empty trie with caching disabled.
type Trie[K constraints.Ordered, V comparable] struct {
	root *Node[K, V]
	size uint64

	cache *lru.Cache[string, V]
}

// WalkFn is used when walking the tree. Takes a
// key and value, returning if iteration should
// be terminated.
type WalkFn[K constraints.Ordered, V comparable] func(k []K, v V) bool

func NewTrie[K constraints.Ordered, V comparable]() *Trie[K, V] {
	return &Trie[K, V]{}
}

// EnableLookupCache memoizes up to size Lookup results. Any Insert or Reset
// purges the cache. A size of zero or less disables caching.
func (t *Trie[K, V]) EnableLookupCache(size int) error {
	if size <= 0 {
		t.cache = nil
		return nil
	}
	cache, err := lru.New[string, V](size)
	if err != nil {
		return fmt.Errorf("creating lookup cache: %w", err)
	}
	t.cache = cache
	return nil
}

// Len is used to return the number of keys in the tree
func (t *Trie[K, V]) Len() int {
	return int(t.size)
}

// Root returns the root node, which is nil until the first Insert.
func (t *Trie[K, V]) Root() *Node[K, V] {
	return t.root
}

// Insert sets key to value. It returns the previous value and whether the
// key was already present.
func (t *Trie[K, V]) Insert(key []K, value V) (V, bool) {
	old, ok := Get(t.root, key)
	t.root = Insert(t.root, key, value)
	if !ok {
		t.size++
	}
	if t.cache != nil {
		t.cache.Purge()
	}
	return old, ok
}

func (t *Trie[K, V]) Lookup(key []K) V {
	if t.cache == nil {
		return Lookup(t.root, key)
	}
	ck := cacheKey(key)
	if v, ok := t.cache.Get(ck); ok {
		return v
	}
	v := Lookup(t.root, key)
	t.cache.Add(ck, v)
	return v
}

// CacheLen reports how many lookups are currently memoized.
func (t *Trie[K, V]) CacheLen() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

func (t *Trie[K, V]) Get(key []K) (V, bool) {
	return Get(t.root, key)
}

// Reset drops every node, returning the trie to its empty state.
func (t *Trie[K, V]) Reset() {
	t.root = nil
	t.size = 0
	if t.cache != nil {
		t.cache.Purge()
	}
}

func (t *Trie[K, V]) String() string {
	return Render(t.root)
}

// Iterator returns an iterator over the keys of the trie in ascending order.
func (t *Trie[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(t.root)
}

// Walk is used to walk the tree
func (t *Trie[K, V]) Walk(fn WalkFn[K, V]) {
	if t.root == nil {
		return
	}
	recursiveWalk(t.root, nil, fn)
}

// recursiveWalk is used to do a pre-order walk of a node
// recursively. Returns true if the walk should be aborted
func recursiveWalk[K constraints.Ordered, V comparable](n *Node[K, V], path []K, fn WalkFn[K, V]) bool {
	if n.set && fn(path, n.value) {
		return true
	}
	for i, c := range n.keys {
		if recursiveWalk(n.children[i], append(path[:len(path):len(path)], c), fn) {
			return true
		}
	}
	return false
}
