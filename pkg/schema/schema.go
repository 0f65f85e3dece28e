// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/agentschema/agentschema-go/pkg/dataformat"
	"github.com/agentschema/agentschema-go/pkg/orderedmap"
)

// Field declares one named scalar field of a Schema.
type Field struct {
	Name        string
	Type        FieldType
	Description string

	// Required fields must be present unless a Default is declared.
	Required bool
	// Default is used when the field is absent. nil means no default.
	Default interface{}

	// Format names a string constraint (see Formats()). String fields only.
	Format string
	// Minimum is an inclusive lower bound. Integer fields only.
	Minimum *int64
}

// Schema is a named, ordered set of field declarations.
type Schema struct {
	Name        string
	Description string
	// Shorthand names the field that receives a scalar given in place of a mapping.
	Shorthand string

	fields []*Field
}

// NewSchema validates the field table and returns a Schema. Errors here are
// defects in the schema definition itself.
func NewSchema(name, description string, fields []Field) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("Expected schema name to be non-empty")
	}

	s := &Schema{Name: name, Description: description}
	seen := map[string]struct{}{}

	for i := range fields {
		field := fields[i]

		if field.Name == "" {
			return nil, fmt.Errorf("Schema %s: expected field #%d to have a name", name, i+1)
		}
		if _, found := seen[field.Name]; found {
			return nil, fmt.Errorf("Schema %s: field '%s' is declared more than once", name, field.Name)
		}
		seen[field.Name] = struct{}{}

		if !field.Type.valid() {
			return nil, fmt.Errorf("Schema %s: field '%s' has unknown type %s", name, field.Name, field.Type)
		}
		if field.Format != "" {
			if field.Type != StringType {
				return nil, fmt.Errorf("Schema %s: field '%s' declares format '%s' but is of type %s", name, field.Name, field.Format, field.Type)
			}
			if _, found := formats[field.Format]; !found {
				return nil, fmt.Errorf("Schema %s: field '%s' declares unknown format '%s'", name, field.Name, field.Format)
			}
		}
		if field.Minimum != nil && field.Type != IntegerType {
			return nil, fmt.Errorf("Schema %s: field '%s' declares a minimum but is of type %s", name, field.Name, field.Type)
		}

		if field.Default != nil {
			normalized, ok := field.Type.normalize(field.Default)
			if !ok {
				return nil, fmt.Errorf("Schema %s: default of field '%s' is %s, expected %s",
					name, field.Name, valueTypeAsString(field.Default), field.Type)
			}
			if msg := checkConstraints(&field, normalized); msg != "" {
				return nil, fmt.Errorf("Schema %s: default of field '%s' is invalid: %s", name, field.Name, msg)
			}
			field.Default = normalized
		}

		s.fields = append(s.fields, &field)
	}

	return s, nil
}

// MustNewSchema is like NewSchema but panics on an invalid definition.
func MustNewSchema(name, description string, fields []Field) *Schema {
	s, err := NewSchema(name, description, fields)
	if err != nil {
		panic(err)
	}
	return s
}

// WithShorthand returns a copy of s that loads scalars into the named field.
func (s *Schema) WithShorthand(fieldName string) (*Schema, error) {
	if s.Field(fieldName) == nil {
		return nil, fmt.Errorf("Schema %s: shorthand field '%s' is not declared", s.Name, fieldName)
	}
	copied := *s
	copied.Shorthand = fieldName
	return &copied, nil
}

// Fields returns field declarations in declaration order.
func (s *Schema) Fields() []Field {
	var result []Field
	for _, f := range s.fields {
		result = append(result, *f)
	}
	return result
}

// Field returns the declaration named name, or nil.
func (s *Schema) Field(name string) *Field {
	for _, f := range s.fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (s *Schema) AllowsKey(key string) bool {
	return s.Field(key) != nil
}

func (s *Schema) fieldNames() []string {
	var names []string
	for _, f := range s.fields {
		names = append(names, f.Name)
	}
	return names
}

// Load binds data to a new Record. See LoadWithContext.
func (s *Schema) Load(data interface{}) (*Record, error) {
	return s.LoadWithContext(data, nil)
}

// LoadWithContext binds data (a mapping produced by a parser, or by
// Record.Save) to a new Record. All violations are reported together in a
// *ValidationError.
func (s *Schema) LoadWithContext(data interface{}, ctx *LoadContext) (*Record, error) {
	input, err := s.asMap(data)
	if err != nil {
		return nil, err
	}

	if ctx != nil && ctx.ProcessInput != nil {
		input, err = ctx.ProcessInput(input)
		if err != nil {
			return nil, fmt.Errorf("Processing input for %s: %w", s.Name, err)
		}
	}

	rec, err := s.check(input, ctx != nil && ctx.DisallowUnknownKeys)
	if err != nil {
		return nil, err
	}

	if ctx != nil && ctx.ProcessOutput != nil {
		rec, err = ctx.ProcessOutput(rec)
		if err != nil {
			return nil, fmt.Errorf("Processing output for %s: %w", s.Name, err)
		}
	}

	return rec, nil
}

// FromText decodes data in the given format and loads the result.
func (s *Schema) FromText(data []byte, format dataformat.Format, ctx *LoadContext) (*Record, error) {
	val, err := dataformat.Decode(data, format)
	if err != nil {
		return nil, err
	}
	return s.LoadWithContext(val, ctx)
}

func (s *Schema) FromJSON(data []byte) (*Record, error) {
	return s.FromText(data, dataformat.FormatJSON, nil)
}

func (s *Schema) FromYAML(data []byte) (*Record, error) {
	return s.FromText(data, dataformat.FormatYAML, nil)
}

func (s *Schema) FromTOML(data []byte) (*Record, error) {
	return s.FromText(data, dataformat.FormatTOML, nil)
}

// asMap accepts every mapping shape a parser may produce. A nil document is
// an empty mapping.
func (s *Schema) asMap(data interface{}) (*orderedmap.Map, error) {
	switch typed := data.(type) {
	case nil:
		return orderedmap.NewMap(), nil
	case *orderedmap.Map:
		return typed.Copy(), nil
	case map[string]interface{}:
		return orderedmap.Conversion{Object: typed}.FromUnorderedMaps().(*orderedmap.Map), nil
	case map[interface{}]interface{}:
		verr := &ValidationError{Schema: s.Name}
		for k := range typed {
			if _, ok := k.(string); !ok {
				verr.add(NonStringKeyError{Schema: s.Name, Key: k})
			}
		}
		if err := verr.errOrNil(); err != nil {
			return nil, err
		}
		return orderedmap.Conversion{Object: typed}.FromUnorderedMaps().(*orderedmap.Map), nil
	case []interface{}:
		return nil, &ValidationError{Schema: s.Name, Violations: []error{NotAMappingError{Schema: s.Name, Found: data}}}
	default:
		if s.Shorthand != "" {
			return orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: s.Shorthand, Value: data}}), nil
		}
		return nil, &ValidationError{Schema: s.Name, Violations: []error{NotAMappingError{Schema: s.Name, Found: data}}}
	}
}
