// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sniffs

import (
	"github.com/petar-djukic/go-phpsniff/internal/tokens"
	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// ForeachNamesSniff is the stable name of the foreach variable naming sniff.
const ForeachNamesSniff = "KentStandard.DisallowGenericVariableNamesInForEachLoop"

// Message codes reported by ForeachVariableNames.
const (
	CodeMissingOpenParenthesis  = "MissingOpenParenthesis"
	CodeMissingCloseParenthesis = "MissingCloseParenthesis"
	CodeGenericVariableNames    = "GenericVariableNamesInForEachLoop"
)

const (
	msgMissingOpen  = "Possible parse error: FOREACH has no opening parenthesis"
	msgMissingClose = "Possible parse error: FOREACH has no closing parenthesis"
	msgGenericName  = "Avoid the use of $k, $v, $key, $value etc. for variables within a foreach, names SHOULD be descriptive. Found %s"
)

const defaultMaxShortLength = 2

// DefaultGenericNames lists the variable names flagged regardless of length.
var DefaultGenericNames = []string{"$value", "$key"}

// ForeachNamesConfig holds the tunable properties of ForeachVariableNames.
type ForeachNamesConfig struct {
	// MaxShortLength is the longest name, sigil included, that counts as
	// non-descriptive. Zero selects the default of 2; negative disables
	// the length rule.
	MaxShortLength int

	// GenericNames are flagged on exact match, sigil included. Nil selects
	// DefaultGenericNames.
	GenericNames []string

	// Deduplicate reports at most one naming warning per token. By default
	// a name that is both short and generic gets two warnings.
	Deduplicate bool
}

// ForeachVariableNames flags non-descriptive variable names declared in the
// header of a foreach loop, e.g. $k, $v, $key and $value. Only the
// parenthesized clause is inspected; the loop body is not.
type ForeachVariableNames struct {
	maxShortLength int
	genericNames   map[string]bool
	deduplicate    bool
}

// NewForeachVariableNames returns the sniff configured by cfg.
func NewForeachVariableNames(cfg ForeachNamesConfig) *ForeachVariableNames {
	maxLen := cfg.MaxShortLength
	if maxLen == 0 {
		maxLen = defaultMaxShortLength
	}

	names := cfg.GenericNames
	if names == nil {
		names = DefaultGenericNames
	}
	generic := make(map[string]bool, len(names))
	for _, n := range names {
		generic[n] = true
	}

	return &ForeachVariableNames{
		maxShortLength: maxLen,
		genericNames:   generic,
		deduplicate:    cfg.Deduplicate,
	}
}

func (s *ForeachVariableNames) Name() string { return ForeachNamesSniff }

func (s *ForeachVariableNames) Register() []types.TokenKind {
	return []types.TokenKind{types.KindForeach}
}

// Process checks the foreach header that follows the keyword at position.
// A header without an opening parenthesis, or whose opener has no recorded
// closer, produces a single parse warning at the keyword and nothing else.
func (s *ForeachVariableNames) Process(stream *tokens.Stream, position int, r Reporter) {
	open, ok := stream.FindNext(types.KindOpenParenthesis, position)
	if !ok {
		r.AddWarning(position, msgMissingOpen, CodeMissingOpenParenthesis)
		return
	}

	closer, ok := stream.Closer(open)
	if !ok {
		r.AddWarning(position, msgMissingClose, CodeMissingCloseParenthesis)
		return
	}

	for i := open; i < closer; i++ {
		tok := stream.At(i)
		if tok.Kind != types.KindVariable {
			continue
		}
		for n := s.violations(tok.Content); n > 0; n-- {
			r.AddWarning(i, msgGenericName, CodeGenericVariableNames, tok.Content)
		}
	}
}

// violations counts the naming rules the variable breaks.
func (s *ForeachVariableNames) violations(name string) int {
	n := 0
	if s.maxShortLength > 0 && len(name) <= s.maxShortLength {
		n++
	}
	if s.genericNames[name] {
		n++
	}
	if s.deduplicate && n > 1 {
		n = 1
	}
	return n
}
