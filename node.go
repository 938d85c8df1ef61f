// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"golang.org/x/exp/constraints"
)

// Node is a single trie node. A node owns its children exclusively, so
// dropping the root releases the whole subtree.
//
// keys is kept sorted and children[i] is the node reached by keys[i].
type Node[K constraints.Ordered, V comparable] struct {
	value    V
	set      bool
	keys     []K
	children []*Node[K, V]
}

func newNode[K constraints.Ordered, V comparable]() *Node[K, V] {
	return &Node[K, V]{}
}

// Value returns the value stored at the node, or the zero value of V.
func (n *Node[K, V]) Value() V {
	return n.value
}

func (n *Node[K, V]) setValue(value V) {
	n.value = value
	n.set = true
}

func (n *Node[K, V]) getNumChildren() int {
	return len(n.keys)
}

func (n *Node[K, V]) getKeyAtIdx(idx int) K {
	return n.keys[idx]
}

func (n *Node[K, V]) getChild(idx int) *Node[K, V] {
	return n.children[idx]
}

// Child returns the node reached from n by symbol c.
func (n *Node[K, V]) Child(c K) (*Node[K, V], bool) {
	child, _ := findChild(n, c)
	return child, child != nil
}

// Symbols returns the symbols of n's children in ascending order.
func (n *Node[K, V]) Symbols() []K {
	out := make([]K, len(n.keys))
	copy(out, n.keys)
	return out
}

func (n *Node[K, V]) isEmpty() bool {
	var zero V
	return n.value == zero
}
