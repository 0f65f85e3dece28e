// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over user output (typically, a tty
device). Results go to stdout; warnings and debug logging go to stderr.
*/
package ui
