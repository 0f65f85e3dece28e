// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/agentschema/agentschema-go/pkg/orderedmap"
)

// LoadContext customizes Schema.LoadWithContext.
type LoadContext struct {
	// ProcessInput rewrites the input mapping before fields are read.
	ProcessInput func(*orderedmap.Map) (*orderedmap.Map, error)
	// ProcessOutput replaces the loaded record.
	ProcessOutput func(*Record) (*Record, error)
	// DisallowUnknownKeys reports input keys the schema does not declare.
	DisallowUnknownKeys bool
}

// SaveContext customizes Record.SaveWithContext and text rendering.
type SaveContext struct {
	// ProcessObject replaces the record before it is saved.
	ProcessObject func(*Record) (*Record, error)
	// ProcessDict rewrites the saved mapping.
	ProcessDict func(*orderedmap.Map) (*orderedmap.Map, error)
	// Indent is spaces per level for text output. 0 selects the format's
	// default (2 for JSON and YAML, none for TOML). Compact JSON needs
	// ToText with dataformat.EncodeOpts directly.
	Indent int
}

func (c *SaveContext) indent() int {
	if c == nil || c.Indent == 0 {
		return defaultIndent
	}
	return c.Indent
}
