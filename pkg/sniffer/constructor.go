// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sniffer

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/petar-djukic/go-phpsniff/internal/dispatch"
	"github.com/petar-djukic/go-phpsniff/internal/report"
	"github.com/petar-djukic/go-phpsniff/internal/sniffs"
	"github.com/petar-djukic/go-phpsniff/internal/tokenfile"
	"github.com/petar-djukic/go-phpsniff/internal/tokens"
	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// New validates the config and returns a Sniffer with the built-in sniffs
// registered. A nil logger discards dispatch tracing.
func New(cfg Config, logger *log.Logger) (Sniffer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid config"), ErrInvalidConfig)
	}

	registry := dispatch.NewRegistry(
		dispatch.WithLogger(logger),
		dispatch.WithExclusions(cfg.Exclude...),
	)
	err := dispatch.RegisterDefaults(registry, dispatch.Defaults{
		ForeachNames: sniffs.ForeachNamesConfig{
			MaxShortLength: cfg.MaxShortLength,
			GenericNames:   cfg.GenericNames,
			Deduplicate:    cfg.Deduplicate,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "registering sniffs")
	}

	return &sniffer{
		registry: registry,
		loadOpts: tokenfile.Options{MatchParentheses: cfg.MatchParentheses},
	}, nil
}

type sniffer struct {
	registry *dispatch.Registry
	loadOpts tokenfile.Options
}

func (s *sniffer) Check(ctx context.Context, file string, toks []types.Token) (*Result, error) {
	stream := tokens.New(toks)
	if err := stream.Validate(); err != nil {
		return nil, err
	}
	return s.run(ctx, file, stream)
}

func (s *sniffer) CheckDump(ctx context.Context, path string) (*Result, error) {
	d, err := tokenfile.Load(path, s.loadOpts)
	if err != nil {
		return nil, errors.Mark(err, ErrLoadFailure)
	}
	return s.run(ctx, d.File, d.Stream)
}

func (s *sniffer) Sniffs() []SniffInfo {
	var out []SniffInfo
	for _, sn := range s.registry.Sniffs() {
		out = append(out, SniffInfo{Name: sn.Name(), Triggers: sn.Register()})
	}
	return out
}

func (s *sniffer) run(ctx context.Context, file string, stream *tokens.Stream) (*Result, error) {
	c := report.NewCollector()
	if err := s.registry.Run(ctx, stream, c); err != nil {
		return &Result{File: file, Warnings: c.Sorted()}, err
	}
	return &Result{File: file, Warnings: c.Sorted()}, nil
}

// validateConfig checks the generic names and exclusions are well formed.
func validateConfig(cfg Config) error {
	for _, name := range cfg.GenericNames {
		if strings.TrimSpace(name) == "" {
			return errors.New("generic names must not be empty")
		}
		if !strings.HasPrefix(name, "$") {
			return errors.Newf("generic name %q must start with $", name)
		}
	}
	for _, code := range cfg.Exclude {
		if strings.TrimSpace(code) == "" {
			return errors.New("exclusions must not be empty")
		}
	}
	return nil
}
