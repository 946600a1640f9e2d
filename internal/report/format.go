// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a format name to a Format. Empty selects text.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// jsonReport is the document written by FormatJSON.
type jsonReport struct {
	File     string          `json:"file"`
	Warnings []types.Warning `json:"warnings"`
	Count    int             `json:"count"`
}

// Write renders warnings for the named file to w.
func Write(w io.Writer, format Format, file string, warnings []types.Warning) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, file, warnings)
	case FormatText, "":
		_, err := io.WriteString(w, Text(file, warnings))
		return err
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(format))
	}
}

// Text renders warnings as a plain listing, one per line, followed by a
// summary line. An empty slice renders nothing.
func Text(file string, warnings []types.Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("FILE: %s\n", file))
	for _, warn := range warnings {
		buf.WriteString(fmt.Sprintf("%4d:%-3d %-7s %s (%s)\n",
			warn.Line, warn.Column, warn.Severity, warn.Message, warn.FullCode()))
	}
	noun := "WARNINGS"
	if len(warnings) == 1 {
		noun = "WARNING"
	}
	buf.WriteString(fmt.Sprintf("FOUND %d %s\n", len(warnings), noun))
	return buf.String()
}

func writeJSON(w io.Writer, file string, warnings []types.Warning) error {
	if warnings == nil {
		warnings = []types.Warning{}
	}
	out, err := json.MarshalIndent(jsonReport{File: file, Warnings: warnings, Count: len(warnings)}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding report")
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
