// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch maps token kinds to the sniffs registered for them and
// drives those sniffs over a token stream.
package dispatch

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/petar-djukic/go-phpsniff/internal/report"
	"github.com/petar-djukic/go-phpsniff/internal/sniffs"
	"github.com/petar-djukic/go-phpsniff/internal/tokens"
	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// ErrDuplicateSniff is returned when two sniffs share a name.
var ErrDuplicateSniff = errors.New("sniff already registered")

// Registry holds registered sniffs indexed by the token kinds they listen for.
type Registry struct {
	sniffs  []sniffs.Sniff
	byKind  map[types.TokenKind][]sniffs.Sniff
	exclude map[string]bool
	logger  *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithExclusions suppresses sniffs by name, or single messages by full
// code ("<sniff name>.<code>").
func WithExclusions(codes ...string) Option {
	return func(r *Registry) {
		for _, c := range codes {
			r.exclude[c] = true
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byKind:  make(map[types.TokenKind][]sniffs.Sniff),
		exclude: make(map[string]bool),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a sniff under every token kind it registers for.
func (r *Registry) Register(s sniffs.Sniff) error {
	for _, existing := range r.sniffs {
		if existing.Name() == s.Name() {
			return errors.Wrapf(ErrDuplicateSniff, "%s", s.Name())
		}
	}
	r.sniffs = append(r.sniffs, s)
	for _, kind := range s.Register() {
		r.byKind[kind] = append(r.byKind[kind], s)
	}
	return nil
}

// Sniffs returns every registered sniff in registration order.
func (r *Registry) Sniffs() []sniffs.Sniff {
	out := make([]sniffs.Sniff, len(r.sniffs))
	copy(out, r.sniffs)
	return out
}

// For returns the sniffs triggered by kind.
func (r *Registry) For(kind types.TokenKind) []sniffs.Sniff {
	return r.byKind[kind]
}

// Excluded reports whether a sniff name or full message code is suppressed.
func (r *Registry) Excluded(code string) bool {
	return r.exclude[code]
}

// Run walks the stream once and calls each interested sniff on every token
// of a kind it registered for, in registration order. Findings go to sink.
// A malformed construct only produces warnings; Run returns an error only
// when ctx is done.
func (r *Registry) Run(ctx context.Context, stream *tokens.Stream, sink report.Sink) error {
	for i := 0; i < stream.Len(); i++ {
		listeners := r.byKind[stream.At(i).Kind]
		if len(listeners) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "stopped at token %d", i)
		}
		for _, s := range listeners {
			if r.exclude[s.Name()] {
				continue
			}
			r.logger.Debug("processing", "sniff", s.Name(), "position", i)
			s.Process(stream, i, &sniffReporter{
				source: s.Name(),
				stream: stream,
				sink:   sink,
				reg:    r,
			})
		}
	}
	return nil
}

// sniffReporter adapts a Sink to the Reporter a single sniff sees,
// attaching the sniff name and token location to each warning.
type sniffReporter struct {
	source string
	stream *tokens.Stream
	sink   report.Sink
	reg    *Registry
}

func (sr *sniffReporter) AddWarning(position int, message, code string, args ...string) {
	w := types.Warning{
		Position: position,
		Source:   sr.source,
		Code:     code,
		Message:  render(message, args),
		Args:     args,
		Severity: types.SeverityWarning,
	}
	if sr.reg.exclude[w.FullCode()] {
		return
	}
	if position >= 0 && position < sr.stream.Len() {
		tok := sr.stream.At(position)
		w.Line, w.Column = tok.Line, tok.Column
	}
	sr.reg.logger.Debug("warning", "code", w.FullCode(), "position", position)
	sr.sink.Add(w)
}

// render fills a message template. Templates without args are returned
// as-is so literal percent signs survive.
func render(message string, args []string) string {
	if len(args) == 0 {
		return message
	}
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a
	}
	return fmt.Sprintf(message, vals...)
}
