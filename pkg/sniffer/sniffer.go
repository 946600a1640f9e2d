// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sniffer is the public entry point of go-phpsniff: it checks a
// host-produced token stream against the built-in sniffs and returns the
// warnings they report.
package sniffer

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// Error types for the Sniffer API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadFailure   = errors.New("failed to load token dump")
)

// Config configures a Sniffer instance.
type Config struct {
	Exclude          []string // Sniff names or full codes to suppress
	MaxShortLength   int      // Longest non-descriptive name, sigil included (default 2, negative disables)
	GenericNames     []string // Names flagged on exact match (nil = "$value", "$key")
	Deduplicate      bool     // At most one naming warning per token
	MatchParentheses bool     // Recompute parenthesis closers when loading dumps
}

// Result holds the outcome of checking one file.
type Result struct {
	File     string          // File the token stream belongs to
	Warnings []types.Warning // Findings ordered by token position
}

// SniffInfo describes a registered sniff.
type SniffInfo struct {
	Name     string            // Stable sniff name
	Triggers []types.TokenKind // Token kinds that trigger it
}

// Sniffer checks token streams.
type Sniffer interface {
	// Check runs every enabled sniff over toks. Findings are never errors;
	// an error is returned only when the tokens are inconsistent or ctx
	// is done.
	Check(ctx context.Context, file string, toks []types.Token) (*Result, error)

	// CheckDump loads a token dump from path and checks it.
	CheckDump(ctx context.Context, path string) (*Result, error)

	// Sniffs lists the registered sniffs.
	Sniffs() []SniffInfo
}
