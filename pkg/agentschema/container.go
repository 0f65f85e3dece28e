// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package agentschema

import (
	"github.com/agentschema/agentschema-go/pkg/schema"
)

const (
	FieldCPU    = "cpu"
	FieldMemory = "memory"

	FieldMinReplicas = "minReplicas"
	FieldMaxReplicas = "maxReplicas"
)

// ContainerResources is the resource allocation for a containerized agent.
// Valid CPU and memory pairings depend on the target hosting provider.
var ContainerResources = schema.MustNewSchema("ContainerResources",
	"Resource allocation for a containerized agent.",
	[]schema.Field{
		{
			Name:        FieldCPU,
			Type:        schema.StringType,
			Required:    true,
			Description: "CPU allocation for the container (e.g., '0.5', '1', '2')",
		},
		{
			Name:        FieldMemory,
			Type:        schema.StringType,
			Required:    true,
			Description: "Memory allocation for the container (e.g., '0.5Gi', '2Gi')",
		},
	})

// ContainerScale is the scaling configuration for a containerized agent.
var ContainerScale = schema.MustNewSchema("ContainerScale",
	"Scaling configuration for a containerized agent.",
	[]schema.Field{
		{
			Name:        FieldMinReplicas,
			Type:        schema.IntegerType,
			Required:    true,
			Description: "Minimum number of replicas",
		},
		{
			Name:        FieldMaxReplicas,
			Type:        schema.IntegerType,
			Required:    true,
			Description: "Maximum number of replicas",
		},
	})
