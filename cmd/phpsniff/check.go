// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-phpsniff/internal/report"
	"github.com/petar-djukic/go-phpsniff/pkg/sniffer"
)

// newCheckCmd creates the "check" command.
func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <token-dump>",
		Short: "Check one token dump",
		Long:  "Check loads a YAML or JSON token dump of one PHP file, runs the enabled sniffs over it, and prints the warnings they report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args[0])
		},
	}
}

// runCheck executes the check.
func (a *app) runCheck(cmd *cobra.Command, path string) error {
	format, err := report.ParseFormat(a.v.GetString("format"))
	if err != nil {
		return err
	}

	s, err := sniffer.New(a.sniffConfig(), a.logger)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a.logger.Info("checking", "dump", path)
	result, err := s.CheckDump(ctx, path)
	if err != nil {
		return err
	}

	if err := report.Write(cmd.OutOrStdout(), format, result.File, result.Warnings); err != nil {
		return errors.Wrap(err, "writing report")
	}

	a.logger.Info("check complete", "file", result.File, "warnings", len(result.Warnings))
	if len(result.Warnings) > 0 && a.v.GetBool("fail-on-warning") {
		return errWarningsFound
	}
	return nil
}

// sniffConfig builds the sniffer config from flags, env, and config file.
func (a *app) sniffConfig() sniffer.Config {
	cfg := sniffer.Config{
		Exclude:          trimAll(a.v.GetStringSlice("exclude")),
		MaxShortLength:   a.v.GetInt("max-short-length"),
		Deduplicate:      a.v.GetBool("deduplicate"),
		MatchParentheses: a.v.GetBool("match-parens"),
	}
	if a.v.IsSet("generic-names") {
		cfg.GenericNames = trimAll(a.v.GetStringSlice("generic-names"))
		if cfg.GenericNames == nil {
			cfg.GenericNames = []string{}
		}
	}
	return cfg
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
