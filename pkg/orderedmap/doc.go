// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Records save into a Map so that their JSON and YAML renderings list fields in
declaration order, keeping output deterministic and stable.
*/
package orderedmap
