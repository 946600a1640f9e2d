// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report collects warnings produced by sniffs and formats them
// for output.
package report

import (
	"sort"
	"sync"

	"github.com/petar-djukic/go-phpsniff/pkg/types"
)

// Sink receives rendered warnings.
type Sink interface {
	Add(w types.Warning)
}

// Collector is an append-only Sink safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	warnings []types.Warning
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records a warning.
func (c *Collector) Add(w types.Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}

// Len returns the number of warnings recorded so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}

// Warnings returns the recorded warnings in the order they were added.
func (c *Collector) Warnings() []types.Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Sorted returns the recorded warnings ordered by token position, then by
// full code. Warnings that tie keep their insertion order.
func (c *Collector) Sorted() []types.Warning {
	out := c.Warnings()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].FullCode() < out[j].FullCode()
	})
	return out
}
