// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package agentschema declares the record schemas of containerized agent
definitions and indexes them by kind.

Each schema is a schema.Schema value; records are loaded with, for example,

	rec, err := agentschema.ContainerResources.Load(data)
	cpu := rec.GetString(agentschema.FieldCPU)
*/
package agentschema
