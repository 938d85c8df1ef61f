// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	trie "github.com/absolutelightning/go-generic-trie"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "trie-demo",
		Usage: "builds a trie and prints lookups and its structure",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "words",
				Aliases:   []string{"w"},
				Usage:     "file with one key per line; values are line numbers",
				TakesFile: true,
			},
			&cli.StringSliceFlag{
				Name:    "lookup",
				Aliases: []string{"l"},
				Usage:   "key to look up after loading, may be repeated",
			},
			&cli.IntFlag{
				Name:  "cache",
				Usage: "size of the lookup cache, 0 disables it",
				Value: 0,
				Action: func(_ context.Context, _ *cli.Command, n int) error {
					if n < 0 {
						return fmt.Errorf("cache size must not be negative, got %d", n)
					}

					return nil
				},
			},
			&cli.BoolFlag{
				Name:  "render",
				Usage: "print the rendered tree after loading",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout)
		},
	}
}

func action(_ context.Context, cmd *cli.Command, stdout io.Writer) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cmd.Bool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	words := cmd.String("words")
	if words == "" {
		runScenarios(stdout)
		return nil
	}

	t := trie.NewTrie[rune, int]()
	if err := t.EnableLookupCache(cmd.Int("cache")); err != nil {
		return err
	}
	if err := loadWords(t, words); err != nil {
		return err
	}
	log.Info().Str("path", words).Int("keys", t.Len()).Msg("Loaded word list")

	if cmd.Bool("render") {
		fmt.Fprintln(stdout, t.String())
	}
	lookupKeys(t, cmd.StringSlice("lookup"), stdout)

	return nil
}

// lookupKeys prints the value of each key. Lookups go through the trie's
// cache when one is enabled.
func lookupKeys(t *trie.Trie[rune, int], keys []string, stdout io.Writer) {
	for _, key := range keys {
		v := t.Lookup([]rune(key))
		log.Debug().Str("key", key).Int("value", v).Int("cached", t.CacheLen()).Msg("Lookup")
		fmt.Fprintf(stdout, "lookup %s: %d\n", key, v)
	}
}

func loadWords(t *trie.Trie[rune, int], path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNumber := 1
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if _, updated := t.Insert([]rune(word), lineNumber); updated {
			log.Debug().Str("word", word).Int("line", lineNumber).Msg("Duplicate key overwritten")
		}
		lineNumber++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word list %s: %w", path, err)
	}

	return nil
}

// runScenarios prints the alphabetic and binary-key trees and a handful of
// lookups against an integer-valued trie.
func runScenarios(stdout io.Writer) {
	keys := []string{"a", "an", "another", "b", "bob", "bool", "home"}
	words := trie.FromStrings(keys, func(string) string { return "" })
	fmt.Fprintf(stdout, "%s\n==>%s\n", strings.Join(keys, ", "), trie.Render(words))

	binKeys := []string{"001", "100", "101"}
	binVals := []string{"y", "x", "z"}
	var bin *trie.Node[rune, string]
	for i, k := range binKeys {
		bin = trie.Insert(bin, []rune(k), binVals[i])
	}
	fmt.Fprintf(stdout, "%s\n==>%s\n", strings.Join(binKeys, ", "), trie.Render(bin))

	vals := []int{1, 2, 7, 1, 4, 3, 4}
	var nums *trie.Node[rune, int]
	for i, k := range []string{"a", "an", "another", "b", "bool", "bob", "home"} {
		nums = trie.Insert(nums, []rune(k), vals[i])
	}
	for _, k := range []string{"another", "home", "the"} {
		fmt.Fprintf(stdout, "lookup %s: %d\n", k, trie.Lookup(nums, []rune(k)))
	}
}
