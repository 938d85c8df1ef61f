// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	trie "github.com/absolutelightning/go-generic-trie"
	"github.com/stretchr/testify/require"
)

func TestCommand_Scenarios(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, newCommand(&out).Run(context.Background(), []string{"trie-demo"}))

	want := "a, an, another, b, bob, bool, home\n" +
		"==>(, (a, (an, (ano, (anot, (anoth, (anothe, (another))))))), (b, (bo, (bob), (boo, (bool)))), (h, (ho, (hom, (home)))))\n" +
		"001, 100, 101\n" +
		"==>(, (0, (00, (001:y))), (1, (10, (100:x), (101:z))))\n" +
		"lookup another: 7\n" +
		"lookup home: 4\n" +
		"lookup the: 0\n"
	require.Equal(t, want, out.String())
}

func TestCommand_Words(t *testing.T) {
	t.Parallel()

	words := filepath.Join("..", "..", "testdata", "words.txt")

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{
		"trie-demo", "--words", words, "--cache", "4", "--lookup", "another", "-l", "zebra",
	})
	require.NoError(t, err)
	require.Equal(t, "lookup another: 6\nlookup zebra: 0\n", out.String())
}

func TestCommand_Errors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"trie-demo", "--words", "does-not-exist.txt"})
	require.ErrorContains(t, err, "opening word list")

	err = newCommand(&out).Run(context.Background(), []string{"trie-demo", "--words", "x", "--cache=-1"})
	require.ErrorContains(t, err, "cache size must not be negative")
}

func TestLookupKeys_UsesCache(t *testing.T) {
	t.Parallel()

	tr := trie.NewTrie[rune, int]()
	require.NoError(t, tr.EnableLookupCache(4))
	require.NoError(t, loadWords(tr, filepath.Join("..", "..", "testdata", "words.txt")))

	var out bytes.Buffer
	lookupKeys(tr, []string{"another", "zebra", "another"}, &out)

	require.Equal(t, "lookup another: 6\nlookup zebra: 0\nlookup another: 6\n", out.String())
	require.Equal(t, 2, tr.CacheLen())
}
