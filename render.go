// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Render returns a parenthesized dump of the tree rooted at t, for example
//
//	(, (a:1, (an:2)))
//
// Each node prints as (prefix[:value], child, ...), where the value is
// omitted when it is the zero value and children appear in ascending symbol
// order. A nil tree renders as "()".
func Render[K constraints.Ordered, V comparable](t *Node[K, V]) string {
	return RenderPrefix(t, "")
}

// RenderPrefix renders t as Render does, treating prefix as the display
// path from the real root down to t.
func RenderPrefix[K constraints.Ordered, V comparable](t *Node[K, V], prefix string) string {
	if t == nil {
		return "()"
	}
	var sb strings.Builder
	renderNode(&sb, t, prefix)
	return sb.String()
}

func renderNode[K constraints.Ordered, V comparable](sb *strings.Builder, n *Node[K, V], prefix string) {
	sb.WriteString("(")
	sb.WriteString(prefix)
	if !n.isEmpty() {
		fmt.Fprintf(sb, ":%v", n.value)
	}
	for i, c := range n.keys {
		sb.WriteString(", ")
		renderNode(sb, n.children[i], prefix+symbolString(c))
	}
	sb.WriteString(")")
}
