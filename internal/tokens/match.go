// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tokens

import "github.com/petar-djukic/go-phpsniff/pkg/types"

// MatchParentheses returns a copy of toks with ParenthesisCloser set on
// every T_OPEN_PARENTHESIS that has a balancing T_CLOSE_PARENTHESIS.
// Existing annotations are discarded and recomputed. Openers left unbalanced
// at the end of the stream get no closer, and stray closers are ignored.
func MatchParentheses(toks []types.Token) []types.Token {
	out := cloneTokens(toks)
	var open []int

	for i := range out {
		switch out[i].Kind {
		case types.KindOpenParenthesis:
			out[i].ParenthesisCloser = nil
			open = append(open, i)
		case types.KindCloseParenthesis:
			out[i].ParenthesisCloser = nil
			if len(open) == 0 {
				continue
			}
			opener := open[len(open)-1]
			open = open[:len(open)-1]
			out[opener].ParenthesisCloser = types.CloserAt(i)
		default:
			out[i].ParenthesisCloser = nil
		}
	}

	return out
}
