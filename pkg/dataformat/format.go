// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package dataformat

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatUnknown Format = ""
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
)

var (
	jsonExts = []string{".json"}
	yamlExts = []string{".yaml", ".yml"}
	tomlExts = []string{".toml"}
)

// Formats lists supported formats in the order they are offered to users.
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatTOML}
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatUnknown, fmt.Errorf("Unknown format '%s' (supported: %s)", name, strings.Join(formatNames(), ", "))
	}
}

// FormatFromPath guesses a format from the file extension of path.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case matchesExt(ext, jsonExts):
		return FormatJSON
	case matchesExt(ext, yamlExts):
		return FormatYAML
	case matchesExt(ext, tomlExts):
		return FormatTOML
	default:
		return FormatUnknown
	}
}

func matchesExt(ext string, exts []string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func formatNames() []string {
	var names []string
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return names
}
