// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import "github.com/petar-djukic/go-phpsniff/internal/sniffs"

// Defaults holds the properties of the built-in sniffs.
type Defaults struct {
	ForeachNames sniffs.ForeachNamesConfig
}

// RegisterDefaults adds the built-in sniffs to the registry.
func RegisterDefaults(r *Registry, d Defaults) error {
	return r.Register(sniffs.NewForeachVariableNames(d.ForeachNames))
}
