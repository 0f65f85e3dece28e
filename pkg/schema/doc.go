// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package schema binds untyped mappings to typed, validated records.

# Schemas and Records

A Schema is a named, ordered table of Field declarations. Each Field has a
scalar FieldType and a required/default policy. Concrete record shapes are
configuration: they are built with NewSchema rather than written as Go types.

Schema.Load reads a mapping (as produced by a JSON, YAML or TOML parser, or by
Record.Save) and yields an immutable Record. Every violation found while
reading is collected into a single *ValidationError. Keys the schema does not
declare are ignored unless LoadContext.DisallowUnknownKeys is set.

Record.Save reproduces a mapping holding exactly the fields the record has, in
declaration order, so that Load(Save(r)) equals r. ToJSON, ToYAML and ToTOML
render that mapping as text.

# Other Schema Formats

A Schema can be exported as an OpenAPI v3 document (NewOpenAPIDocument).
*/
package schema
