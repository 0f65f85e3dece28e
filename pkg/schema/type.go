// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/agentschema/agentschema-go/pkg/orderedmap"
)

// FieldType is the declared scalar type of a Field.
type FieldType int

const (
	StringType FieldType = iota + 1
	IntegerType
	BooleanType
	FloatType
)

func (t FieldType) String() string {
	switch t {
	case StringType:
		return "string"
	case IntegerType:
		return "integer"
	case BooleanType:
		return "boolean"
	case FloatType:
		return "float"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

func (t FieldType) valid() bool {
	return t >= StringType && t <= FloatType
}

// openAPIType maps to the OpenAPI v3 type keyword.
func (t FieldType) openAPIType() string {
	switch t {
	case FloatType:
		return "number"
	default:
		return t.String()
	}
}

// normalize checks that value is compatible with t and returns the canonical
// Go representation stored in a Record: string, int64, bool or float64.
func (t FieldType) normalize(value interface{}) (interface{}, bool) {
	switch t {
	case StringType:
		s, ok := value.(string)
		return s, ok
	case BooleanType:
		b, ok := value.(bool)
		return b, ok
	case IntegerType:
		return asInt64(value)
	case FloatType:
		return asFloat64(value)
	default:
		return nil, false
	}
}

func asInt64(value interface{}) (interface{}, bool) {
	switch typed := value.(type) {
	case int:
		return int64(typed), true
	case int8:
		return int64(typed), true
	case int16:
		return int64(typed), true
	case int32:
		return int64(typed), true
	case int64:
		return typed, true
	case uint:
		return uintAsInt64(uint64(typed))
	case uint8:
		return int64(typed), true
	case uint16:
		return int64(typed), true
	case uint32:
		return int64(typed), true
	case uint64:
		return uintAsInt64(typed)
	case float32:
		return integralFloat(float64(typed))
	case float64:
		// JSON parsers without number preservation produce float64 for every number
		return integralFloat(typed)
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			return i, true
		}
		if f, err := typed.Float64(); err == nil {
			return integralFloat(f)
		}
		return nil, false
	default:
		return nil, false
	}
}

func uintAsInt64(u uint64) (interface{}, bool) {
	if u > math.MaxInt64 {
		return nil, false
	}
	return int64(u), true
}

func integralFloat(f float64) (interface{}, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return nil, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, false
	}
	return int64(f), true
}

func asFloat64(value interface{}) (interface{}, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		if i, ok := asInt64(value); ok {
			return float64(i.(int64)), true
		}
		return nil, false
	}
}

// valueTypeAsString describes the type of a raw input value in the same
// vocabulary as FieldType.String().
func valueTypeAsString(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64:
		return "float"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case json.Number:
		if _, err := strconv.ParseInt(string(typed), 10, 64); err == nil {
			return "integer"
		}
		return "float"
	case map[string]interface{}, map[interface{}]interface{}, *orderedmap.Map:
		return "map"
	case []interface{}:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
