// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestIterator_Order(t *testing.T) {
	t.Parallel()

	tr := NewTrie[rune, int]()
	keys := []string{"home", "another", "a", "bool", "an", "b", "bob"}
	for i, k := range keys {
		tr.Insert([]rune(k), i+1)
	}

	it := tr.Iterator()
	var got []string
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		require.Equal(t, v, it.Front().Value())
		require.Equal(t, v, tr.Lookup(k))
		got = append(got, string(k))
	}
	require.Nil(t, it.Front())

	want := []string{"a", "an", "another", "b", "bob", "bool", "home"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("iteration mismatch (-want +got):\n%s", diff)
	}
}

func TestIterator_Empty(t *testing.T) {
	t.Parallel()

	_, _, ok := NewTrie[rune, int]().Iterator().Next()
	require.False(t, ok)

	_, _, ok = NewIterator[rune, int](nil).Next()
	require.False(t, ok)
}

func TestIterator_MatchesSortedKeys(t *testing.T) {
	t.Parallel()

	// Iterating the tree must produce the same keys as sorting and
	// de-duplicating the inserted set.
	sortedUnique := func(keys []string) bool {
		var tr *Node[byte, bool]
		for _, k := range keys {
			tr = Insert(tr, []byte(k), true)
		}

		set := append([]string(nil), keys...)
		sort.Strings(set)
		var want []string
		for i, k := range set {
			if i > 0 && set[i-1] == k {
				continue
			}
			want = append(want, k)
		}

		var got []string
		it := NewIterator(tr)
		for {
			k, _, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, string(k))
		}
		return cmp.Equal(want, got)
	}
	require.NoError(t, quick.Check(sortedUnique, nil))
}
