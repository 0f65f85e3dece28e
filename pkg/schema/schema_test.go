// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/agentschema/agentschema-go/pkg/orderedmap"
	"github.com/agentschema/agentschema-go/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStringFields(t *testing.T) {
	rec, err := resourcesSchema.Load(map[string]interface{}{"cpu": "1", "memory": "2Gi"})
	require.NoError(t, err)

	assert.Equal(t, "1", rec.GetString("cpu"))
	assert.Equal(t, "2Gi", rec.GetString("memory"))
	assert.Equal(t, []string{"cpu", "memory"}, rec.Save().Keys())

	jsonText, err := rec.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"cpu\": \"1\",\n  \"memory\": \"2Gi\"\n}", jsonText)
}

func TestLoadIntegerFields(t *testing.T) {
	rec, err := scaleSchema.Load(map[string]interface{}{"maxReplicas": 3, "minReplicas": 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), rec.GetInt("minReplicas"))
	assert.Equal(t, int64(3), rec.GetInt("maxReplicas"))

	yamlText, err := rec.ToYAML()
	require.NoError(t, err)
	assert.Equal(t, "minReplicas: 1\nmaxReplicas: 3\n", yamlText)
}

func TestLoadMissingRequiredField(t *testing.T) {
	_, err := resourcesSchema.Load(map[string]interface{}{"cpu": "1"})
	verr := requireValidationError(t, err)

	require.Len(t, verr.Violations, 1)
	missing, ok := verr.Violations[0].(schema.MissingFieldError)
	require.True(t, ok)
	assert.Equal(t, "memory", missing.Field.Name)

	pad := strings.Repeat(" ", len("ContainerResources.memory")+1)
	expected := "Validating ContainerResources:\n" +
		"\n" +
		"ContainerResources.memory |\n" +
		pad + "| MISSING REQUIRED FIELD - the schema requires a value for this field:\n" +
		pad + "|      found: (nothing)\n" +
		pad + "|   expected: string\n"
	assert.Equal(t, expected, err.Error())
}

func TestLoadMismatchedType(t *testing.T) {
	_, err := scaleSchema.Load(map[string]interface{}{"minReplicas": "1", "maxReplicas": 3})
	verr := requireValidationError(t, err)

	require.Len(t, verr.Violations, 1)
	mismatch, ok := verr.Violations[0].(schema.MismatchedTypeError)
	require.True(t, ok)
	assert.Equal(t, "minReplicas", mismatch.Field.Name)
	assert.Equal(t, "1", mismatch.Found)

	assert.Contains(t, err.Error(), "TYPE MISMATCH")
	assert.Contains(t, err.Error(), "found: string")
	assert.Contains(t, err.Error(), "expected: integer")
}

func TestLoadCollectsViolationsInDeclarationOrder(t *testing.T) {
	_, err := resourcesSchema.Load(map[string]interface{}{"cpu": 1})
	verr := requireValidationError(t, err)

	require.Len(t, verr.Violations, 2)
	assert.IsType(t, schema.MismatchedTypeError{}, verr.Violations[0])
	assert.IsType(t, schema.MissingFieldError{}, verr.Violations[1])
	assert.Equal(t, "ContainerResources", verr.Schema)
}

func TestLoadNullIsAbsent(t *testing.T) {
	_, err := resourcesSchema.Load(map[string]interface{}{"cpu": "1", "memory": nil})
	verr := requireValidationError(t, err)
	require.Len(t, verr.Violations, 1)
	assert.IsType(t, schema.MissingFieldError{}, verr.Violations[0])
}

func TestIntegerCoercion(t *testing.T) {
	accepted := []interface{}{
		int(2), int8(2), int16(2), int32(2), int64(2),
		uint(2), uint8(2), uint16(2), uint32(2), uint64(2),
		float32(2), float64(2), json.Number("2"), json.Number("2.0"),
	}
	for _, val := range accepted {
		t.Run(fmt.Sprintf("%T(%v)", val, val), func(t *testing.T) {
			rec, err := scaleSchema.Load(map[string]interface{}{"minReplicas": val, "maxReplicas": 2})
			require.NoError(t, err)
			assert.Equal(t, int64(2), rec.GetInt("minReplicas"))

			stored, found := rec.Get("minReplicas")
			require.True(t, found)
			assert.IsType(t, int64(0), stored)
		})
	}

	rejected := []interface{}{
		"2", float64(2.5), json.Number("2.5"), uint64(math.MaxUint64), math.Inf(1), true,
		[]interface{}{2}, map[string]interface{}{"value": 2},
	}
	for _, val := range rejected {
		t.Run(fmt.Sprintf("rejects %T(%v)", val, val), func(t *testing.T) {
			_, err := scaleSchema.Load(map[string]interface{}{"minReplicas": val, "maxReplicas": 2})
			verr := requireValidationError(t, err)
			require.Len(t, verr.Violations, 1)
			assert.IsType(t, schema.MismatchedTypeError{}, verr.Violations[0])
		})
	}
}

func TestStringFieldsRejectNumbers(t *testing.T) {
	for _, val := range []interface{}{1, 0.5, json.Number("1"), true} {
		_, err := resourcesSchema.Load(map[string]interface{}{"cpu": val, "memory": "2Gi"})
		verr := requireValidationError(t, err)
		require.Len(t, verr.Violations, 1)
		assert.IsType(t, schema.MismatchedTypeError{}, verr.Violations[0])
	}
}

func TestStringFieldsRejectInvalidUTF8(t *testing.T) {
	_, err := resourcesSchema.Load(map[string]interface{}{"cpu": "\xff1", "memory": "2Gi"})
	verr := requireValidationError(t, err)
	require.Len(t, verr.Violations, 1)

	invalid, ok := verr.Violations[0].(schema.InvalidValueError)
	require.True(t, ok)
	assert.Equal(t, "cpu", invalid.Field.Name)
	assert.Equal(t, "expected text to be valid UTF-8", invalid.Message)

	_, err = schema.NewSchema("S", "", []schema.Field{{Name: "a", Type: schema.StringType, Default: "\xff"}})
	require.EqualError(t, err, "Schema S: default of field 'a' is invalid: expected text to be valid UTF-8")

	rec, err := resourcesSchema.Load(map[string]interface{}{"cpu": "½ ✓", "memory": "2Gi"})
	require.NoError(t, err)
	for _, toText := range []func() (string, error){rec.ToJSON, rec.ToYAML, rec.ToTOML} {
		text, err := toText()
		require.NoError(t, err)
		assert.NotContains(t, text, "!!binary")
	}
}

func TestUnknownKeys(t *testing.T) {
	input := map[string]interface{}{"cpu": "1", "memory": "2Gi", "gpu": "1"}

	rec, err := resourcesSchema.Load(input)
	require.NoError(t, err)
	assert.False(t, rec.Has("gpu"))
	assert.Equal(t, []string{"cpu", "memory"}, rec.Save().Keys())

	_, err = resourcesSchema.LoadWithContext(input, &schema.LoadContext{DisallowUnknownKeys: true})
	verr := requireValidationError(t, err)
	require.Len(t, verr.Violations, 1)

	unexpected, ok := verr.Violations[0].(schema.UnexpectedKeyError)
	require.True(t, ok)
	assert.Equal(t, "gpu", unexpected.Key)
	assert.Equal(t, "cpu", unexpected.Suggestion)
	assert.Contains(t, err.Error(), "UNEXPECTED KEY")
	assert.Contains(t, err.Error(), "hint: did you mean 'cpu'?")
}

func TestDefaultsAndOptionalFields(t *testing.T) {
	rec, err := settingsSchema.Load(map[string]interface{}{"name": "agent"})
	require.NoError(t, err)

	assert.True(t, rec.Has("replicas"))
	assert.Equal(t, int64(1), rec.GetInt("replicas"))
	assert.False(t, rec.Has("enabled"))
	assert.False(t, rec.GetBool("enabled"))
	assert.Equal(t, []string{"name", "replicas"}, rec.Save().Keys())

	rec, err = settingsSchema.Load(map[string]interface{}{
		"version": "v0.1.1", "ratio": 1, "enabled": true, "replicas": 4, "name": "agent",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "replicas", "enabled", "ratio", "version"}, rec.Save().Keys())
	assert.Equal(t, 1.0, rec.GetFloat("ratio"))
	assert.True(t, rec.GetBool("enabled"))
	assert.Equal(t, "v0.1.1", rec.GetString("version"))
}

func TestConstraints(t *testing.T) {
	_, err := scaleSchema.Load(map[string]interface{}{"minReplicas": -1, "maxReplicas": 2})
	verr := requireValidationError(t, err)
	require.Len(t, verr.Violations, 1)

	invalid, ok := verr.Violations[0].(schema.InvalidValueError)
	require.True(t, ok)
	assert.Equal(t, "minReplicas", invalid.Field.Name)
	assert.Contains(t, invalid.Message, "at least 0")

	_, err = settingsSchema.Load(map[string]interface{}{"name": "agent", "version": "not a version"})
	verr = requireValidationError(t, err)
	require.Len(t, verr.Violations, 1)
	assert.Contains(t, err.Error(), "INVALID VALUE - expected version formatted value")
}

func TestLoadNonMappings(t *testing.T) {
	for _, input := range []interface{}{[]interface{}{"1"}, "1", 3} {
		_, err := resourcesSchema.Load(input)
		verr := requireValidationError(t, err)
		require.Len(t, verr.Violations, 1)
		assert.IsType(t, schema.NotAMappingError{}, verr.Violations[0])
		assert.Contains(t, err.Error(), "expected: map")
	}

	_, err := resourcesSchema.Load(nil)
	verr := requireValidationError(t, err)
	assert.Len(t, verr.Violations, 2)
}

func TestLoadRejectsNonStringKeys(t *testing.T) {
	_, err := resourcesSchema.Load(map[interface{}]interface{}{"cpu": "1", "memory": "2Gi", 1: "x"})
	verr := requireValidationError(t, err)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, schema.NonStringKeyError{Schema: "ContainerResources", Key: 1}, verr.Violations[0])
	assert.Contains(t, err.Error(), "found: integer")
	assert.Contains(t, err.Error(), "expected: string")

	_, err = resourcesSchema.FromYAML([]byte("cpu: \"1\"\nmemory: 2Gi\n\"1\": x\n1: y\n"))
	verr = requireValidationError(t, err)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, schema.NonStringKeyError{Schema: "ContainerResources", Key: 1}, verr.Violations[0])
}

func TestShorthand(t *testing.T) {
	named := schema.MustNewSchema("Named", "", []schema.Field{
		{Name: "name", Type: schema.StringType, Required: true},
		{Name: "replicas", Type: schema.IntegerType, Default: 1},
	})

	short, err := named.WithShorthand("name")
	require.NoError(t, err)
	assert.Equal(t, "", named.Shorthand)

	rec, err := short.Load("agent")
	require.NoError(t, err)
	assert.Equal(t, "agent", rec.GetString("name"))
	assert.Equal(t, int64(1), rec.GetInt("replicas"))

	_, err = short.Load(3)
	verr := requireValidationError(t, err)
	assert.IsType(t, schema.MismatchedTypeError{}, verr.Violations[0])

	_, err = short.Load([]interface{}{"agent"})
	requireValidationError(t, err)

	_, err = named.WithShorthand("missing")
	require.EqualError(t, err, "Schema Named: shorthand field 'missing' is not declared")
}

func TestLoadAcceptedMappings(t *testing.T) {
	inputs := []interface{}{
		map[string]interface{}{"cpu": "1", "memory": "2Gi"},
		map[interface{}]interface{}{"memory": "2Gi", "cpu": "1"},
		orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "memory", Value: "2Gi"}, {Key: "cpu", Value: "1"}}),
	}

	expected, err := resourcesSchema.Load(inputs[0])
	require.NoError(t, err)

	for _, input := range inputs {
		rec, err := resourcesSchema.Load(input)
		require.NoError(t, err)
		assert.True(t, expected.Equal(rec))
		assert.Equal(t, []string{"cpu", "memory"}, rec.Save().Keys())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		schema *schema.Schema
		input  map[string]interface{}
	}{
		{resourcesSchema, map[string]interface{}{"cpu": "0.5", "memory": "0.5Gi"}},
		{scaleSchema, map[string]interface{}{"minReplicas": 0, "maxReplicas": 10}},
		{settingsSchema, map[string]interface{}{"name": "a", "enabled": false, "ratio": 0.25}},
	} {
		rec, err := tc.schema.Load(tc.input)
		require.NoError(t, err)

		reloaded, err := tc.schema.Load(rec.Save())
		require.NoError(t, err)
		assert.True(t, rec.Equal(reloaded), "%s did not survive save/load", tc.schema.Name)
	}
}

func TestRecordEqual(t *testing.T) {
	a, err := scaleSchema.Load(map[string]interface{}{"minReplicas": 1, "maxReplicas": 3})
	require.NoError(t, err)
	b, err := scaleSchema.Load(map[string]interface{}{"minReplicas": 1.0, "maxReplicas": json.Number("3")})
	require.NoError(t, err)
	c, err := scaleSchema.Load(map[string]interface{}{"minReplicas": 2, "maxReplicas": 3})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestLoadDoesNotModifyInput(t *testing.T) {
	input := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "cpus", Value: "1"}, {Key: "memory", Value: "2Gi"}})

	ctx := &schema.LoadContext{
		ProcessInput: func(m *orderedmap.Map) (*orderedmap.Map, error) {
			val, _ := m.Get("cpus")
			m.Delete("cpus")
			m.Set("cpu", val)
			return m, nil
		},
	}

	rec, err := resourcesSchema.LoadWithContext(input, ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", rec.GetString("cpu"))
	assert.Equal(t, []string{"cpus", "memory"}, input.Keys())
}

func TestLoadContextHooks(t *testing.T) {
	var seen []string

	ctx := &schema.LoadContext{
		ProcessInput: func(m *orderedmap.Map) (*orderedmap.Map, error) {
			seen = append(seen, "input")
			return m, nil
		},
		ProcessOutput: func(rec *schema.Record) (*schema.Record, error) {
			seen = append(seen, "output")
			return scaleSchema.Load(map[string]interface{}{"minReplicas": 5, "maxReplicas": 5})
		},
	}

	rec, err := scaleSchema.LoadWithContext(map[string]interface{}{"minReplicas": 1, "maxReplicas": 3}, ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"input", "output"}, seen)
	assert.Equal(t, int64(5), rec.GetInt("minReplicas"))

	_, err = scaleSchema.LoadWithContext(map[string]interface{}{}, &schema.LoadContext{
		ProcessInput: func(*orderedmap.Map) (*orderedmap.Map, error) { return nil, fmt.Errorf("boom") },
	})
	require.EqualError(t, err, "Processing input for ContainerScale: boom")
}

func TestSaveContextHooks(t *testing.T) {
	rec, err := resourcesSchema.Load(map[string]interface{}{"cpu": "1", "memory": "2Gi"})
	require.NoError(t, err)

	ctx := &schema.SaveContext{
		ProcessObject: func(r *schema.Record) (*schema.Record, error) {
			return resourcesSchema.Load(map[string]interface{}{"cpu": "2", "memory": r.GetString("memory")})
		},
		ProcessDict: func(m *orderedmap.Map) (*orderedmap.Map, error) {
			m.Set("kind", "ContainerResources")
			return m, nil
		},
		Indent: 4,
	}

	saved, err := rec.SaveWithContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cpu", "memory", "kind"}, saved.Keys())

	jsonText, err := rec.ToJSONWithContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"cpu\": \"2\",\n    \"memory\": \"2Gi\",\n    \"kind\": \"ContainerResources\"\n}", jsonText)

	// original record is unchanged
	assert.Equal(t, "1", rec.GetString("cpu"))

	_, err = rec.SaveWithContext(&schema.SaveContext{
		ProcessDict: func(*orderedmap.Map) (*orderedmap.Map, error) { return nil, fmt.Errorf("boom") },
	})
	require.EqualError(t, err, "Processing saved ContainerResources: boom")
}

func TestNewSchemaRejectsInvalidDefinitions(t *testing.T) {
	negative := int64(-1)
	five := int64(5)

	cases := []struct {
		desc   string
		name   string
		fields []schema.Field
		err    string
	}{
		{"empty schema name", "", nil,
			"Expected schema name to be non-empty"},
		{"empty field name", "S", []schema.Field{{Type: schema.StringType}},
			"Schema S: expected field #1 to have a name"},
		{"duplicate field", "S", []schema.Field{{Name: "a", Type: schema.StringType}, {Name: "a", Type: schema.IntegerType}},
			"Schema S: field 'a' is declared more than once"},
		{"unknown type", "S", []schema.Field{{Name: "a"}},
			"Schema S: field 'a' has unknown type FieldType(0)"},
		{"format on integer", "S", []schema.Field{{Name: "a", Type: schema.IntegerType, Format: schema.FormatVersion}},
			"Schema S: field 'a' declares format 'version' but is of type integer"},
		{"unknown format", "S", []schema.Field{{Name: "a", Type: schema.StringType, Format: "uuid"}},
			"Schema S: field 'a' declares unknown format 'uuid'"},
		{"minimum on string", "S", []schema.Field{{Name: "a", Type: schema.StringType, Minimum: &negative}},
			"Schema S: field 'a' declares a minimum but is of type string"},
		{"default of wrong type", "S", []schema.Field{{Name: "a", Type: schema.IntegerType, Default: "1"}},
			"Schema S: default of field 'a' is string, expected integer"},
		{"default below minimum", "S", []schema.Field{{Name: "a", Type: schema.IntegerType, Default: 1, Minimum: &five}},
			"Schema S: default of field 'a' is invalid: expected value to be at least 5, got 1"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := schema.NewSchema(tc.name, "", tc.fields)
			require.EqualError(t, err, tc.err)
		})
	}

	require.Panics(t, func() { schema.MustNewSchema("", "", nil) })
}

func TestSchemaFields(t *testing.T) {
	fields := settingsSchema.Fields()
	require.Len(t, fields, 5)
	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, int64(1), fields[1].Default)

	// returned fields are copies
	fields[0].Name = "changed"
	assert.NotNil(t, settingsSchema.Field("name"))
	assert.Nil(t, settingsSchema.Field("changed"))

	assert.True(t, settingsSchema.AllowsKey("ratio"))
	assert.False(t, settingsSchema.AllowsKey("Ratio"))
	assert.Equal(t, []string{schema.FormatVersion}, schema.Formats())
}
