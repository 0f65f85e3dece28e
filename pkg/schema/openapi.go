// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/agentschema/agentschema-go/pkg/orderedmap"
)

// NewOpenAPIDocument describes schemas as OpenAPI v3 components, keyed by
// schema name.
func NewOpenAPIDocument(schemas ...*Schema) *orderedmap.Map {
	components := orderedmap.NewMap()
	for _, s := range schemas {
		components.Set(s.Name, s.OpenAPISchema())
	}

	return orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "openapi", Value: "3.0.0"},
		{Key: "info", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "version", Value: "0.1.0"},
			{Key: "title", Value: "OpenAPI schema generated from agentschema record schemas"},
		})},
		{Key: "paths", Value: orderedmap.NewMap()},
		{Key: "components", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "schemas", Value: components},
		})},
	})
}

// OpenAPISchema describes s as an OpenAPI v3 (and JSON Schema compatible)
// object schema.
func (s *Schema) OpenAPISchema() *orderedmap.Map {
	result := orderedmap.NewMap()
	result.Set("type", "object")
	if s.Description != "" {
		result.Set("description", s.Description)
	}

	var required []interface{}
	properties := orderedmap.NewMap()
	for _, field := range s.fields {
		properties.Set(field.Name, field.openAPIProperty())
		if field.Required && field.Default == nil {
			required = append(required, field.Name)
		}
	}

	if len(required) > 0 {
		result.Set("required", required)
	}
	result.Set("additionalProperties", false)
	result.Set("properties", properties)
	return result
}

func (f *Field) openAPIProperty() *orderedmap.Map {
	prop := orderedmap.NewMap()
	prop.Set("type", f.Type.openAPIType())
	if f.Description != "" {
		prop.Set("description", f.Description)
	}
	if f.Default != nil {
		prop.Set("default", f.Default)
	}
	if f.Type == FloatType {
		prop.Set("format", "float")
	}
	if f.Format != "" {
		prop.Set("format", f.Format)
	}
	if f.Minimum != nil {
		prop.Set("minimum", *f.Minimum)
	}
	return prop
}
