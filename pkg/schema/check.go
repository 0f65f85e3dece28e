// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/agentschema/agentschema-go/pkg/orderedmap"
	"github.com/agentschema/agentschema-go/pkg/spell"
)

func (s *Schema) check(input *orderedmap.Map, disallowUnknownKeys bool) (*Record, error) {
	verr := &ValidationError{Schema: s.Name}
	values := map[string]interface{}{}

	for _, field := range s.fields {
		raw, found := input.Get(field.Name)
		if !found || raw == nil {
			switch {
			case field.Default != nil:
				values[field.Name] = field.Default
			case field.Required:
				verr.add(MissingFieldError{Schema: s.Name, Field: field})
			}
			continue
		}

		val, err := s.checkField(field, raw)
		if err != nil {
			verr.add(err)
			continue
		}
		values[field.Name] = val
	}

	if disallowUnknownKeys {
		input.Iterate(func(k string, _ interface{}) {
			if !s.AllowsKey(k) {
				verr.add(UnexpectedKeyError{Schema: s.Name, Key: k, Suggestion: spell.Nearest(k, s.fieldNames())})
			}
		})
	}

	if err := verr.errOrNil(); err != nil {
		return nil, err
	}
	return &Record{schema: s, values: values}, nil
}

func (s *Schema) checkField(field *Field, raw interface{}) (interface{}, error) {
	val, ok := field.Type.normalize(raw)
	if !ok {
		return nil, MismatchedTypeError{Schema: s.Name, Field: field, Found: raw}
	}
	if msg := checkConstraints(field, val); msg != "" {
		return nil, InvalidValueError{Schema: s.Name, Field: field, Found: raw, Message: msg}
	}
	return val, nil
}

// checkConstraints expects val to already be normalized to field.Type.
func checkConstraints(field *Field, val interface{}) string {
	if s, ok := val.(string); ok && !utf8.ValidString(s) {
		return "expected text to be valid UTF-8"
	}
	if field.Format != "" {
		if err := formats[field.Format](val.(string)); err != nil {
			return fmt.Sprintf("expected %s formatted value: %s", field.Format, err)
		}
	}
	if field.Minimum != nil {
		if i := val.(int64); i < *field.Minimum {
			return fmt.Sprintf("expected value to be at least %d, got %d", *field.Minimum, i)
		}
	}
	return ""
}
