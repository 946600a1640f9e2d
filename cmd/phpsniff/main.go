// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command phpsniff checks host-produced PHP token dumps for generic
// variable names in foreach loop headers.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

// errWarningsFound signals a clean run that reported warnings.
var errWarningsFound = errors.New("warnings found")

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errWarningsFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// app carries the state shared by every command.
type app struct {
	v      *viper.Viper
	logger *log.Logger
}

// newRootCmd builds the command tree. Logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "phpsniff",
		Short:         "Flag generic variable names in foreach loops",
		Long:          "phpsniff reads a PHP token dump produced by the host tokenizer and reports foreach loops whose header declares short or generic variable names such as $k, $v, $key and $value.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(logOut)
		},
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default .phpsniff.yaml in the working directory)")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("format", "text", "Output format: text or json")
	flags.StringSlice("exclude", nil, "Sniff names or full codes to suppress (repeatable)")
	flags.Int("max-short-length", 0, "Longest non-descriptive variable name including the $ (0 = default 2, negative disables)")
	flags.StringSlice("generic-names", nil, "Variable names always flagged (default $value,$key)")
	flags.Bool("deduplicate", false, "Report at most one naming warning per variable")
	flags.Bool("match-parens", false, "Recompute parenthesis matching instead of trusting the dump")
	flags.Bool("fail-on-warning", true, "Exit with status 1 when warnings are reported")

	for _, name := range []string{
		"config", "log-level", "format", "exclude", "max-short-length",
		"generic-names", "deduplicate", "match-parens", "fail-on-warning",
	} {
		a.v.BindPFlag(name, flags.Lookup(name))
	}

	// Env vars: PHPSNIFF_FORMAT, PHPSNIFF_LOG_LEVEL, etc.
	a.v.SetEnvPrefix("PHPSNIFF")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newSniffsCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup reads the optional config file and sets up logging.
func (a *app) setup(logOut io.Writer) error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
	} else {
		a.v.SetConfigName(".phpsniff")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "reading config")
		}
	}

	level, err := log.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return errors.Wrapf(err, "log level %q", a.v.GetString("log-level"))
	}
	a.logger = log.NewWithOptions(logOut, log.Options{Prefix: "phpsniff", Level: level})
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("loaded config", "path", used)
	}
	return nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print phpsniff version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "phpsniff %s\n", version)
		},
	}
}
