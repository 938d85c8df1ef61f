// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// findChild finds the child reached by c, along with its index in the
// parent's arrays. A miss returns nil and the index c would be inserted at.
func findChild[K constraints.Ordered, V comparable](n *Node[K, V], c K) (*Node[K, V], int) {
	idx, found := slices.BinarySearch(n.keys, c)
	if !found {
		return nil, idx
	}
	return n.children[idx], idx
}

// addChild inserts child under c at idx, keeping the key array sorted.
func addChild[K constraints.Ordered, V comparable](n *Node[K, V], idx int, c K, child *Node[K, V]) {
	n.keys = slices.Insert(n.keys, idx, c)
	n.children = slices.Insert(n.children, idx, child)
}

// symbolString renders one symbol for display. rune and byte symbols are
// shown as characters, everything else with fmt.
func symbolString[K constraints.Ordered](c K) string {
	switch s := any(c).(type) {
	case rune:
		return string(s)
	case byte:
		return string(rune(s))
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// cacheKey encodes a key into a comparable string for the lookup cache.
// Each symbol is length-prefixed so distinct keys never share an encoding.
func cacheKey[K constraints.Ordered](key []K) string {
	var sb strings.Builder
	for _, c := range key {
		s := fmt.Sprint(c)
		fmt.Fprintf(&sb, "%d:%s", len(s), s)
	}
	return sb.String()
}
