// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Severity classifies a reported finding.
type Severity int

const (
	SeverityWarning Severity = iota // Advisory finding; never blocks a scan
	SeverityError                   // Reserved for hosts that escalate findings
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the severity by name for JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Warning is a single finding reported by a sniff against a token.
type Warning struct {
	Position int      `json:"position"` // Token index in the stream
	Line     int      `json:"line"`     // Line of the token (1-based, 0 if unknown)
	Column   int      `json:"column"`   // Column of the token (1-based, 0 if unknown)
	Source   string   `json:"source"`   // Name of the sniff that reported it
	Code     string   `json:"code"`     // Message code within the sniff
	Message  string   `json:"message"`  // Rendered message text
	Args     []string `json:"args,omitempty"`
	Severity Severity `json:"severity"`
}

// FullCode returns the suppression code, "<Source>.<Code>".
func (w Warning) FullCode() string {
	if w.Source == "" {
		return w.Code
	}
	return w.Source + "." + w.Code
}

func (w Warning) String() string {
	return fmt.Sprintf("%d:%d: %s (%s)", w.Line, w.Column, w.Message, w.FullCode())
}
