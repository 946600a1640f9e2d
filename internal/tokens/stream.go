// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tokens holds the immutable token stream that sniffs read from,
// along with the lookups they need: forward search by kind and the
// matched-closer annotation on parenthesis openers.
package tokens

import (
	"github.com/cockroachdb/errors"

	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// ErrInvalidStream marks a token stream whose bracket metadata is inconsistent.
var ErrInvalidStream = errors.New("invalid token stream")

// Stream is an ordered, read-only sequence of tokens for one source file.
type Stream struct {
	tokens []types.Token
}

// New copies toks into a Stream. Later changes to toks, or to the closer
// values they point at, do not affect the Stream.
func New(toks []types.Token) *Stream {
	return &Stream{tokens: cloneTokens(toks)}
}

// Len returns the number of tokens.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the token at index i. It panics if i is out of range, like a
// slice index would.
func (s *Stream) At(i int) types.Token {
	return s.tokens[i]
}

// Tokens returns a copy of every token in the stream.
func (s *Stream) Tokens() []types.Token {
	return cloneTokens(s.tokens)
}

// FindNext returns the index of the first token of the given kind at or
// after start. The bool is false when no such token exists.
func (s *Stream) FindNext(kind types.TokenKind, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(s.tokens); i++ {
		if s.tokens[i].Kind == kind {
			return i, true
		}
	}
	return 0, false
}

// Closer returns the matched closer recorded on the opener at index i.
func (s *Stream) Closer(i int) (int, bool) {
	if i < 0 || i >= len(s.tokens) {
		return 0, false
	}
	return s.tokens[i].Closer()
}

// Validate checks every recorded parenthesis closer: it must lie after its
// opener, inside the stream, and point at a T_CLOSE_PARENTHESIS token.
func (s *Stream) Validate() error {
	for i, tok := range s.tokens {
		closer, ok := tok.Closer()
		if !ok {
			continue
		}
		if closer <= i || closer >= len(s.tokens) {
			return errors.Wrapf(ErrInvalidStream, "token %d: closer %d out of range", i, closer)
		}
		if kind := s.tokens[closer].Kind; kind != types.KindCloseParenthesis {
			return errors.Wrapf(ErrInvalidStream, "token %d: closer %d is %s", i, closer, kind)
		}
	}
	return nil
}

func cloneTokens(toks []types.Token) []types.Token {
	out := make([]types.Token, len(toks))
	for i, tok := range toks {
		if closer, ok := tok.Closer(); ok {
			tok.ParenthesisCloser = types.CloserAt(closer)
		}
		out[i] = tok
	}
	return out
}
