// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"golang.org/x/exp/constraints"
)

// Iterator walks the keys of a tree in ascending order. Keys are visited
// before any key they are a prefix of.
type Iterator[K constraints.Ordered, V comparable] struct {
	stack []nodeWrapper[K, V]
	pos   *Node[K, V]
}

type nodeWrapper[K constraints.Ordered, V comparable] struct {
	n    *Node[K, V]
	path []K
}

func newIterator[K constraints.Ordered, V comparable](root *Node[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{}
	if root != nil {
		it.stack = []nodeWrapper[K, V]{{n: root}}
	}
	return it
}

// NewIterator returns an iterator over the tree rooted at n.
func NewIterator[K constraints.Ordered, V comparable](n *Node[K, V]) *Iterator[K, V] {
	return newIterator(n)
}

// Front returns the node that was last returned by Next.
func (i *Iterator[K, V]) Front() *Node[K, V] {
	return i.pos
}

// Next returns the next key and its value, or false once the tree is
// exhausted.
func (i *Iterator[K, V]) Next() ([]K, V, bool) {
	var zero V

	for len(i.stack) > 0 {
		nodeW := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]
		node := nodeW.n

		// Push children in reverse so the smallest symbol is popped first
		for itr := node.getNumChildren() - 1; itr >= 0; itr-- {
			path := append(nodeW.path[:len(nodeW.path):len(nodeW.path)], node.getKeyAtIdx(itr))
			i.stack = append(i.stack, nodeWrapper[K, V]{n: node.getChild(itr), path: path})
		}

		if node.set {
			i.pos = node
			return nodeW.path, node.value, true
		}
	}
	i.pos = nil
	return nil, zero, false
}
