// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package trie implements a generic prefix tree mapping sequences of ordered
// symbols to values.
//
// A nil *Node is a valid, absent tree: Insert creates the root on demand and
// Lookup on a nil tree misses. Misses are reported with the zero value of V,
// so a key explicitly set to the zero value is indistinguishable from an
// absent key through Lookup. Use Get when the difference matters.
//
// Nothing in this package is safe for concurrent use.
package trie

import (
	"golang.org/x/exp/constraints"
)

// Insert sets the value of key in t, creating t and any missing nodes along
// the key's path. The root is returned so that inserts compose as a fold:
//
//	var t *Node[rune, int]
//	for i, k := range keys {
//		t = Insert(t, []rune(k), i)
//	}
//
// Inserting an empty key sets the root's own value. Inserting an existing
// key overwrites its value.
func Insert[K constraints.Ordered, V comparable](t *Node[K, V], key []K, value V) *Node[K, V] {
	if t == nil {
		t = newNode[K, V]()
	}
	n := t
	for _, c := range key {
		child, idx := findChild(n, c)
		if child == nil {
			child = newNode[K, V]()
			addChild(n, idx, c, child)
		}
		n = child
	}
	n.setValue(value)
	return t
}

// Lookup returns the value stored under key, or the zero value of V if the
// tree is absent or the key was never inserted. It never modifies t.
func Lookup[K constraints.Ordered, V comparable](t *Node[K, V], key []K) V {
	v, _ := Get(t, key)
	return v
}

// Get is like Lookup but also reports whether a value was inserted at key.
func Get[K constraints.Ordered, V comparable](t *Node[K, V], key []K) (V, bool) {
	var zero V
	n := search(t, key)
	if n == nil || !n.set {
		return zero, false
	}
	return n.value, true
}

// search walks the path of key and returns the terminal node, or nil if the
// path leaves the tree.
func search[K constraints.Ordered, V comparable](t *Node[K, V], key []K) *Node[K, V] {
	if t == nil {
		return nil
	}
	n := t
	for _, c := range key {
		child, _ := findChild(n, c)
		if child == nil {
			return nil
		}
		n = child
	}
	return n
}

// FromStrings builds a rune trie from keys, storing value(k) under each key k
// in order.
func FromStrings[V comparable](keys []string, value func(string) V) *Node[rune, V] {
	var t *Node[rune, V]
	for _, k := range keys {
		t = Insert(t, []rune(k), value(k))
	}
	return t
}
