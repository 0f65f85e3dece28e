// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of agentschema.

From top-down, the code is layered in this way:

# Entry Point

	./cmd/agentschema          // a command-line tool

# Commands

Each command loads records from files and reports or re-encodes them.

	pkg/cmd                    // kinds, validate, convert, schema, version
	pkg/cmd/ui                 // stdout/stderr output, debug logging
	pkg/files                  // local, stdin and HTTP inputs; output directories

# Records

A schema is a table of field declarations. Loading binds a parsed mapping to
a validated, immutable record; saving reproduces an ordered mapping.

	pkg/agentschema            // concrete schemas and the kind registry
	pkg/schema                 // Schema, Record, ValidationError, OpenAPI export

# Utilities

	pkg/dataformat             // JSON, YAML and TOML codecs
	pkg/orderedmap             // insertion-ordered mapping used by Save
	pkg/spell                  // "did you mean" suggestions
	pkg/version                // build version

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/agentschema
	- pkg/cmd/ui
	- pkg/dataformat
	- pkg/files
	- pkg/schema
	- pkg/version
	pkg/agentschema:
	- pkg/schema
	- pkg/spell
	pkg/schema:
	- pkg/dataformat
	- pkg/orderedmap
	- pkg/spell
	pkg/files:
	- pkg/dataformat
	pkg/dataformat:
	- pkg/orderedmap
*/
package pkg
