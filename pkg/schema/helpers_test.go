// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"errors"
	"testing"

	"github.com/agentschema/agentschema-go/pkg/schema"
	"github.com/stretchr/testify/require"
)

var (
	zero = int64(0)

	resourcesSchema = schema.MustNewSchema("ContainerResources", "Resource allocation.", []schema.Field{
		{Name: "cpu", Type: schema.StringType, Required: true},
		{Name: "memory", Type: schema.StringType, Required: true},
	})

	scaleSchema = schema.MustNewSchema("ContainerScale", "Scaling configuration.", []schema.Field{
		{Name: "minReplicas", Type: schema.IntegerType, Required: true, Minimum: &zero},
		{Name: "maxReplicas", Type: schema.IntegerType, Required: true, Minimum: &zero},
	})

	// settingsSchema uses every field type, optional fields and defaults.
	settingsSchema = schema.MustNewSchema("Settings", "Every field type.", []schema.Field{
		{Name: "name", Type: schema.StringType, Required: true, Description: "Name"},
		{Name: "replicas", Type: schema.IntegerType, Required: true, Default: 1, Minimum: &zero},
		{Name: "enabled", Type: schema.BooleanType},
		{Name: "ratio", Type: schema.FloatType},
		{Name: "version", Type: schema.StringType, Format: schema.FormatVersion},
	})
)

func requireValidationError(t *testing.T, err error) *schema.ValidationError {
	t.Helper()
	require.Error(t, err)

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr), "Expected *schema.ValidationError, got %T: %s", err, err)
	require.True(t, verr.HasViolations())
	return verr
}
