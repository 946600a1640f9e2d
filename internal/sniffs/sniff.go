// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sniffs contains the rule checks run against a token stream.
// A sniff names the token kinds it wants to see; the dispatcher calls
// Process once per matching token and the sniff reports findings through
// the Reporter it is handed.
package sniffs

import (
	"github.com/petar-djukic/go-phpsniff/internal/tokens"
	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// Reporter receives findings from a sniff. The message is a template
// rendered with args; position is the token index the finding belongs to.
type Reporter interface {
	AddWarning(position int, message, code string, args ...string)
}

// Sniff is a single rule check.
type Sniff interface {
	// Name returns the stable identifier used to enable, disable, and
	// suppress the sniff. It must not change between releases.
	Name() string

	// Register returns the token kinds this sniff is triggered by.
	Register() []types.TokenKind

	// Process inspects the stream around the triggering token at position.
	// Implementations must not retain state between calls.
	Process(stream *tokens.Stream, position int, r Reporter)
}
