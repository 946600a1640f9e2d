// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sniffs

import (
	"github.com/petar-djukic/go-phpsniff/internal/tokens"
	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// reported is one call to recorder.AddWarning.
type reported struct {
	Position int
	Message  string
	Code     string
	Args     []string
}

// recorder is a Reporter that keeps every call in order.
type recorder struct {
	warnings []reported
}

func (r *recorder) AddWarning(position int, message, code string, args ...string) {
	r.warnings = append(r.warnings, reported{Position: position, Message: message, Code: code, Args: args})
}

func (r *recorder) codes() []string {
	out := make([]string, len(r.warnings))
	for i, w := range r.warnings {
		out[i] = w.Code
	}
	return out
}

// streamBuilder assembles token streams for foreach snippets. Parenthesis
// closers are filled in by tokens.MatchParentheses on build.
type streamBuilder struct {
	toks []types.Token
}

func newBuilder() *streamBuilder {
	return (&streamBuilder{}).add(types.KindOpenTag, "<?php\n")
}

func (b *streamBuilder) add(kind types.TokenKind, content string) *streamBuilder {
	b.toks = append(b.toks, types.Token{Kind: kind, Content: content, Line: 1, Column: len(b.toks) + 1})
	return b
}

func (b *streamBuilder) ws() *streamBuilder { return b.add(types.KindWhitespace, " ") }

func (b *streamBuilder) variable(name string) *streamBuilder { return b.add(types.KindVariable, name) }

// pos returns the index the next added token will get.
func (b *streamBuilder) pos() int { return len(b.toks) }

// foreach appends `foreach (<collection> as [<key> => ]<value>) { <body>; }`
// and returns the index of the foreach keyword.
func (b *streamBuilder) foreach(collection, key, value string, body ...string) int {
	kw := b.pos()
	b.add(types.KindForeach, "foreach").ws().add(types.KindOpenParenthesis, "(")
	b.variable(collection).ws().add(types.KindAs, "as").ws()
	if key != "" {
		b.variable(key).ws().add(types.KindDoubleArrow, "=>").ws()
	}
	b.variable(value).add(types.KindCloseParenthesis, ")")
	b.ws().add(types.KindOpenCurly, "{")
	for _, v := range body {
		b.ws().variable(v).add(types.KindSemicolon, ";")
	}
	b.ws().add(types.KindCloseCurly, "}")
	return kw
}

func (b *streamBuilder) build() *tokens.Stream {
	return tokens.New(tokens.MatchParentheses(b.toks))
}

// foreachStream is shorthand for a stream holding a single foreach loop.
func foreachStream(collection, key, value string, body ...string) (*tokens.Stream, int) {
	b := newBuilder()
	kw := b.foreach(collection, key, value, body...)
	return b.build(), kw
}
