// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"sort"

	"github.com/hashicorp/go-version"
)

const (
	// FormatVersion accepts version strings such as "1.2", "v0.1.1" or "2.0.0-beta.1".
	FormatVersion = "version"
)

var formats = map[string]func(string) error{
	FormatVersion: func(s string) error {
		_, err := version.NewVersion(s)
		return err
	},
}

// Formats lists the names accepted in Field.Format.
func Formats() []string {
	var names []string
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
