// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across go-phpsniff packages.
package types

// TokenKind identifies the category of a token in a host token stream.
// Values use the host's own names so that dumps round-trip unchanged.
type TokenKind string

const (
	KindOpenTag          TokenKind = "T_OPEN_TAG"
	KindForeach          TokenKind = "T_FOREACH"
	KindAs               TokenKind = "T_AS"
	KindList             TokenKind = "T_LIST"
	KindVariable         TokenKind = "T_VARIABLE"
	KindString           TokenKind = "T_STRING"
	KindWhitespace       TokenKind = "T_WHITESPACE"
	KindDoubleArrow      TokenKind = "T_DOUBLE_ARROW"
	KindAmpersand        TokenKind = "T_AMPERSAND"
	KindComma            TokenKind = "T_COMMA"
	KindSemicolon        TokenKind = "T_SEMICOLON"
	KindOpenParenthesis  TokenKind = "T_OPEN_PARENTHESIS"
	KindCloseParenthesis TokenKind = "T_CLOSE_PARENTHESIS"
	KindOpenCurly        TokenKind = "T_OPEN_CURLY_BRACKET"
	KindCloseCurly       TokenKind = "T_CLOSE_CURLY_BRACKET"
	KindOpenShortArray   TokenKind = "T_OPEN_SHORT_ARRAY"
	KindCloseShortArray  TokenKind = "T_CLOSE_SHORT_ARRAY"
)

// String returns the host name of the kind.
func (k TokenKind) String() string {
	return string(k)
}

// Token is one element of a host token stream. Tokens are owned by the
// host; sniffs read them by index and never modify them.
type Token struct {
	Kind    TokenKind // Token category
	Content string    // Raw source text, including any sigil
	Line    int       // Line number (1-based, 0 if unknown)
	Column  int       // Column number (1-based, 0 if unknown)

	// ParenthesisCloser is the stream index of the matching
	// T_CLOSE_PARENTHESIS for an opener. Nil when the host recorded no match.
	ParenthesisCloser *int
}

// HasCloser reports whether the token carries a matched closer.
func (t Token) HasCloser() bool {
	return t.ParenthesisCloser != nil
}

// Closer returns the matched closer index and whether one is recorded.
func (t Token) Closer() (int, bool) {
	if t.ParenthesisCloser == nil {
		return 0, false
	}
	return *t.ParenthesisCloser, true
}

// CloserAt returns a pointer suitable for Token.ParenthesisCloser.
func CloserAt(idx int) *int {
	return &idx
}
