// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package agentschema

import (
	"fmt"
	"strings"

	"github.com/agentschema/agentschema-go/pkg/schema"
	"github.com/agentschema/agentschema-go/pkg/spell"
)

var all = []*schema.Schema{
	ContainerResources,
	ContainerScale,
	ProtocolVersionRecord,
	EnvironmentVariable,
}

// All returns every registered schema in a stable order.
func All() []*schema.Schema {
	result := make([]*schema.Schema, len(all))
	copy(result, all)
	return result
}

// Kinds returns the names of registered schemas.
func Kinds() []string {
	var kinds []string
	for _, s := range all {
		kinds = append(kinds, s.Name)
	}
	return kinds
}

// Lookup finds a schema by kind, ignoring case.
func Lookup(kind string) (*schema.Schema, error) {
	for _, s := range all {
		if strings.EqualFold(s.Name, kind) {
			return s, nil
		}
	}
	if suggestion := spell.Nearest(kind, Kinds()); suggestion != "" {
		return nil, fmt.Errorf("Unknown kind '%s' (hint: did you mean '%s'?)", kind, suggestion)
	}
	return nil, fmt.Errorf("Unknown kind '%s' (known kinds: %s)", kind, strings.Join(Kinds(), ", "))
}
