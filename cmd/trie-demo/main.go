// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Command trie-demo exercises the trie package. Without flags it runs the
// built-in scenarios; with --words it loads a word list, one key per line,
// storing each word's line number as its value.
//
// Usage:
//
//	go run ./cmd/trie-demo --words words.txt --lookup another --lookup the
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("trie-demo failed")
	}
}
