// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package dataformat converts between text (JSON, YAML, TOML) and the untyped
mappings that schema records load from and save to.

Decoding yields native Go values (maps, slices, scalars) exactly as the
underlying parser produces them; JSON numbers are kept as json.Number so that
integers survive without passing through float64. Encoding accepts
*orderedmap.Map values and keeps their key order where the format allows it.
*/
package dataformat
