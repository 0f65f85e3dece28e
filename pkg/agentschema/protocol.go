// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package agentschema

import (
	"github.com/agentschema/agentschema-go/pkg/schema"
)

const (
	FieldProtocol = "protocol"
	FieldVersion  = "version"

	FieldName  = "name"
	FieldValue = "value"
)

// ProtocolVersionRecord names a protocol spoken by a containerized agent.
var ProtocolVersionRecord = schema.MustNewSchema("ProtocolVersionRecord",
	"A protocol and the version of it supported by the agent.",
	[]schema.Field{
		{
			Name:        FieldProtocol,
			Type:        schema.StringType,
			Required:    true,
			Description: "The protocol type.",
		},
		{
			Name:        FieldVersion,
			Type:        schema.StringType,
			Required:    true,
			Description: "The version string for the protocol, e.g. 'v0.1.1'.",
		},
	})

// EnvironmentVariable is a variable set in the agent's container.
var EnvironmentVariable = schema.MustNewSchema("EnvironmentVariable",
	"An environment variable to set in the container.",
	[]schema.Field{
		{
			Name:        FieldName,
			Type:        schema.StringType,
			Required:    true,
			Description: "Name of the environment variable",
		},
		{
			Name:        FieldValue,
			Type:        schema.StringType,
			Required:    true,
			Description: "Value of the environment variable",
		},
	})
