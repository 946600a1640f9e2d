// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sniffer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

const sniffName = "KentStandard.DisallowGenericVariableNamesInForEachLoop"

// foreachTokens returns `foreach ($items as <key> => <value>) { $k; }`.
func foreachTokens(key, value string) []types.Token {
	return []types.Token{
		{Kind: types.KindForeach, Content: "foreach", Line: 1, Column: 1},
		{Kind: types.KindOpenParenthesis, Content: "(", Line: 1, Column: 9, ParenthesisCloser: types.CloserAt(7)},
		{Kind: types.KindVariable, Content: "$items", Line: 1, Column: 10},
		{Kind: types.KindAs, Content: "as", Line: 1, Column: 17},
		{Kind: types.KindVariable, Content: key, Line: 1, Column: 20},
		{Kind: types.KindDoubleArrow, Content: "=>", Line: 1, Column: 30},
		{Kind: types.KindVariable, Content: value, Line: 1, Column: 33},
		{Kind: types.KindCloseParenthesis, Content: ")", Line: 1, Column: 45},
		{Kind: types.KindOpenCurly, Content: "{", Line: 1, Column: 47},
		{Kind: types.KindVariable, Content: "$k", Line: 2, Column: 5},
		{Kind: types.KindCloseCurly, Content: "}", Line: 3, Column: 1},
	}
}

func args(ws []types.Warning) []string {
	var out []string
	for _, w := range ws {
		out = append(out, w.Args...)
	}
	return out
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "blank generic name", cfg: Config{GenericNames: []string{" "}}},
		{name: "generic name without sigil", cfg: Config{GenericNames: []string{"value"}}},
		{name: "blank exclusion", cfg: Config{Exclude: []string{""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestSniffer_Check(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		key      string
		value    string
		wantArgs []string
	}{
		{name: "short names", key: "$k", value: "$v", wantArgs: []string{"$k", "$v"}},
		{name: "generic names", key: "$key", value: "$value", wantArgs: []string{"$key", "$value"}},
		{name: "descriptive names", key: "$itemKey", value: "$itemValue"},
		{name: "excluded code", cfg: Config{Exclude: []string{sniffName + ".GenericVariableNamesInForEachLoop"}}, key: "$k", value: "$v"},
		{name: "custom generic names", cfg: Config{GenericNames: []string{"$itemKey"}}, key: "$itemKey", value: "$value", wantArgs: []string{"$itemKey"}},
		{name: "both rules literal", cfg: Config{GenericNames: []string{"$v"}}, key: "$itemKey", value: "$v", wantArgs: []string{"$v", "$v"}},
		{name: "both rules deduplicated", cfg: Config{GenericNames: []string{"$v"}, Deduplicate: true}, key: "$itemKey", value: "$v", wantArgs: []string{"$v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg, nil)
			require.NoError(t, err)

			res, err := s.Check(context.Background(), "loop.php", foreachTokens(tt.key, tt.value))
			require.NoError(t, err)
			assert.Equal(t, "loop.php", res.File)
			assert.Equal(t, tt.wantArgs, args(res.Warnings))
			for _, w := range res.Warnings {
				assert.Equal(t, sniffName, w.Source)
				assert.Equal(t, types.SeverityWarning, w.Severity)
				assert.Equal(t, 1, w.Line)
			}
		})
	}
}

func TestSniffer_CheckInvalidStream(t *testing.T) {
	s, err := New(Config{}, nil)
	require.NoError(t, err)

	toks := foreachTokens("$item", "$row")
	toks[1].ParenthesisCloser = types.CloserAt(2)

	_, err = s.Check(context.Background(), "loop.php", toks)
	require.Error(t, err)
}

func TestSniffer_CheckCanceled(t *testing.T) {
	s, err := New(Config{}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Check(ctx, "loop.php", foreachTokens("$k", "$v"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, res)
	assert.Empty(t, res.Warnings)
}

func TestSniffer_CheckDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loop.yaml")
	dump := `file: src/Loop.php
tokens:
  - {type: T_FOREACH, content: foreach, line: 4, column: 5}
  - {type: T_OPEN_PARENTHESIS, content: "("}
  - {type: T_VARIABLE, content: $rows, line: 4, column: 14}
  - {type: T_AS, content: as}
  - {type: T_VARIABLE, content: $value, line: 4, column: 23}
  - {type: T_CLOSE_PARENTHESIS, content: ")"}
`
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o644))

	t.Run("without closers", func(t *testing.T) {
		s, err := New(Config{}, nil)
		require.NoError(t, err)

		res, err := s.CheckDump(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "src/Loop.php", res.File)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "MissingCloseParenthesis", res.Warnings[0].Code)
		assert.Equal(t, 4, res.Warnings[0].Line)
		assert.Equal(t, 5, res.Warnings[0].Column)
	})

	t.Run("matched", func(t *testing.T) {
		s, err := New(Config{MatchParentheses: true}, nil)
		require.NoError(t, err)

		res, err := s.CheckDump(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "GenericVariableNamesInForEachLoop", res.Warnings[0].Code)
		assert.Equal(t, 23, res.Warnings[0].Column)
	})

	t.Run("missing file", func(t *testing.T) {
		s, err := New(Config{}, nil)
		require.NoError(t, err)

		_, err = s.CheckDump(context.Background(), filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLoadFailure))
	})
}

func TestSniffer_Sniffs(t *testing.T) {
	s, err := New(Config{}, nil)
	require.NoError(t, err)

	got := s.Sniffs()
	require.Len(t, got, 1)
	assert.Equal(t, sniffName, got[0].Name)
	assert.Equal(t, []types.TokenKind{types.KindForeach}, got[0].Triggers)
}
