// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is the root of the agentschema command tree.

Commands that read records expose RunWithFiles, which takes already
resolved files and a UI; Run resolves -f flags and uses a TTY.
*/
package cmd
