// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/agentschema/agentschema-go/pkg/dataformat"
	"github.com/agentschema/agentschema-go/pkg/orderedmap"
)

const defaultIndent = 2

// Record is a loaded, validated value of a Schema. Records are immutable and
// safe for concurrent readers.
type Record struct {
	schema *Schema
	// values holds set or defaulted fields, normalized to
	// string, int64, bool or float64.
	values map[string]interface{}
}

func (r *Record) Schema() *Schema { return r.schema }

// Get returns the value of field name and whether the record holds it.
func (r *Record) Get(name string) (interface{}, bool) {
	val, found := r.values[name]
	return val, found
}

func (r *Record) Has(name string) bool {
	_, found := r.values[name]
	return found
}

// GetString returns a string field, or "" when unset.
func (r *Record) GetString(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// GetInt returns an integer field, or 0 when unset.
func (r *Record) GetInt(name string) int64 {
	i, _ := r.values[name].(int64)
	return i
}

// GetBool returns a boolean field, or false when unset.
func (r *Record) GetBool(name string) bool {
	b, _ := r.values[name].(bool)
	return b
}

// GetFloat returns a float field, or 0 when unset.
func (r *Record) GetFloat(name string) float64 {
	f, _ := r.values[name].(float64)
	return f
}

// Equal reports whether both records belong to the same schema and hold the
// same fields with the same values.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.schema.Name != other.schema.Name || len(r.values) != len(other.values) {
		return false
	}
	for k, v := range r.values {
		otherV, found := other.values[k]
		if !found || otherV != v {
			return false
		}
	}
	return true
}

// Save returns the fields the record holds, in declaration order.
func (r *Record) Save() *orderedmap.Map {
	result := orderedmap.NewMap()
	for _, field := range r.schema.fields {
		if val, found := r.values[field.Name]; found {
			result.Set(field.Name, val)
		}
	}
	return result
}

func (r *Record) SaveWithContext(ctx *SaveContext) (*orderedmap.Map, error) {
	rec := r
	if ctx != nil && ctx.ProcessObject != nil {
		var err error
		rec, err = ctx.ProcessObject(rec)
		if err != nil {
			return nil, fmt.Errorf("Processing %s before save: %w", r.schema.Name, err)
		}
	}

	result := rec.Save()

	if ctx != nil && ctx.ProcessDict != nil {
		var err error
		result, err = ctx.ProcessDict(result)
		if err != nil {
			return nil, fmt.Errorf("Processing saved %s: %w", r.schema.Name, err)
		}
	}
	return result, nil
}

// ToText renders the saved mapping in the given format.
func (r *Record) ToText(format dataformat.Format, ctx *SaveContext, opts dataformat.EncodeOpts) ([]byte, error) {
	saved, err := r.SaveWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return dataformat.Encode(saved, format, opts)
}

func (r *Record) ToJSON() (string, error) {
	return r.ToJSONWithContext(nil)
}

func (r *Record) ToYAML() (string, error) {
	return r.ToYAMLWithContext(nil)
}

func (r *Record) ToTOML() (string, error) {
	return r.ToTOMLWithContext(nil)
}

func (r *Record) ToJSONWithContext(ctx *SaveContext) (string, error) {
	bs, err := r.ToText(dataformat.FormatJSON, ctx, dataformat.EncodeOpts{Indent: ctx.indent()})
	return string(bs), err
}

func (r *Record) ToYAMLWithContext(ctx *SaveContext) (string, error) {
	bs, err := r.ToText(dataformat.FormatYAML, ctx, dataformat.EncodeOpts{Indent: ctx.indent()})
	return string(bs), err
}

func (r *Record) ToTOMLWithContext(ctx *SaveContext) (string, error) {
	indent := 0
	if ctx != nil {
		indent = ctx.Indent
	}
	bs, err := r.ToText(dataformat.FormatTOML, ctx, dataformat.EncodeOpts{Indent: indent})
	return string(bs), err
}
