// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tokenfile reads token streams dumped by the host tokenizer.
//
// A dump is YAML or JSON, either a bare list of tokens or a document with
// a file name:
//
//	file: src/Loop.php
//	tokens:
//	  - {type: T_FOREACH, content: foreach, line: 3, column: 5}
//	  - {type: T_OPEN_PARENTHESIS, content: "(", parenthesis_closer: 9}
//
// Token indices are positions in the tokens list.
package tokenfile

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-phpsniff/internal/tokens"
	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// ErrDecode marks a dump that could not be read as a token stream.
var ErrDecode = errors.New("cannot decode token dump")

// Options controls how a dump is turned into a stream.
type Options struct {
	// MatchParentheses recomputes parenthesis closers instead of trusting
	// the ones recorded in the dump.
	MatchParentheses bool
}

// Dump is a decoded token dump.
type Dump struct {
	File   string         // File name recorded in the dump, or the path it was loaded from
	Stream *tokens.Stream // Validated token stream
}

type tokenRecord struct {
	Type              string `yaml:"type"`
	Content           string `yaml:"content"`
	Line              int    `yaml:"line"`
	Column            int    `yaml:"column"`
	ParenthesisCloser *int   `yaml:"parenthesis_closer"`
}

type document struct {
	File   string        `yaml:"file"`
	Tokens []tokenRecord `yaml:"tokens"`
}

// Load reads and decodes the dump at path. When the dump names no file,
// path is used.
func Load(path string, opts Options) (*Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening token dump")
	}
	defer f.Close()

	d, err := Decode(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	if d.File == "" {
		d.File = path
	}
	return d, nil
}

// Decode reads one dump from r.
func Decode(r io.Reader, opts Options) (*Dump, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrDecode, "empty input")
		}
		return nil, errors.Mark(errors.Wrap(err, "parsing dump"), ErrDecode)
	}

	var doc document
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&doc.Tokens); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "decoding tokens"), ErrDecode)
		}
	case yaml.MappingNode:
		if err := node.Decode(&doc); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "decoding document"), ErrDecode)
		}
	default:
		return nil, errors.Wrapf(ErrDecode, "line %d: expected a token list or a document", node.Line)
	}

	toks, err := convert(doc.Tokens)
	if err != nil {
		return nil, err
	}
	if opts.MatchParentheses {
		toks = tokens.MatchParentheses(toks)
	}

	stream := tokens.New(toks)
	if err := stream.Validate(); err != nil {
		return nil, err
	}
	return &Dump{File: doc.File, Stream: stream}, nil
}

func convert(records []tokenRecord) ([]types.Token, error) {
	toks := make([]types.Token, len(records))
	for i, rec := range records {
		if rec.Type == "" {
			return nil, errors.Wrapf(ErrDecode, "token %d: missing type", i)
		}
		toks[i] = types.Token{
			Kind:              types.TokenKind(rec.Type),
			Content:           rec.Content,
			Line:              rec.Line,
			Column:            rec.Column,
			ParenthesisCloser: rec.ParenthesisCloser,
		}
	}
	return toks, nil
}
