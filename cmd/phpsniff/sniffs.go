// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-phpsniff/pkg/sniffer"
)

// newSniffsCmd creates the "sniffs" command.
func newSniffsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sniffs",
		Short: "List registered sniffs",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sniffer.New(a.sniffConfig(), a.logger)
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, info := range s.Sniffs() {
				triggers := make([]string, len(info.Triggers))
				for i, k := range info.Triggers {
					triggers[i] = k.String()
				}
				fmt.Fprintf(out, "%s\t%s\n", info.Name, strings.Join(triggers, ","))
			}
			return nil
		},
	}
}
