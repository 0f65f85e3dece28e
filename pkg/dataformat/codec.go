// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package dataformat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agentschema/agentschema-go/pkg/orderedmap"
	"gopkg.in/yaml.v3"
)

const maxIndent = 8

type EncodeOpts struct {
	// Indent is the number of spaces per nesting level (0-8).
	// For JSON, 0 means compact output.
	Indent int
}

// Decode parses data in the given format into native Go values.
// An empty document decodes to nil.
func Decode(data []byte, format Format) (interface{}, error) {
	var val interface{}

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err := dec.Decode(&val)
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("Unmarshaling JSON: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("Unmarshaling JSON: unexpected data after top-level value")
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		err := dec.Decode(&val)
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("Unmarshaling YAML: %w", err)
		}
		var extra interface{}
		if err := dec.Decode(&extra); err != io.EOF {
			return nil, fmt.Errorf("Unmarshaling YAML: expected a single document")
		}

	case FormatTOML:
		err := toml.Unmarshal(data, &val)
		if err != nil {
			return nil, fmt.Errorf("Unmarshaling TOML: %w", err)
		}

	default:
		return nil, fmt.Errorf("Unknown format '%s'", format)
	}

	return val, nil
}

// Encode renders val (typically an *orderedmap.Map) in the given format.
func Encode(val interface{}, format Format, opts EncodeOpts) ([]byte, error) {
	if opts.Indent < 0 || opts.Indent > maxIndent {
		// mitigate https://cwe.mitre.org/data/definitions/409.html
		return nil, fmt.Errorf("Expected indent value to be between 0 and %d, got %d", maxIndent, opts.Indent)
	}

	switch format {
	case FormatJSON:
		var bs []byte
		var err error
		if opts.Indent > 0 {
			bs, err = json.MarshalIndent(val, "", strings.Repeat(" ", opts.Indent))
		} else {
			bs, err = json.Marshal(val)
		}
		if err != nil {
			return nil, fmt.Errorf("Marshaling JSON: %w", err)
		}
		return bs, nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		indent := opts.Indent
		if indent == 0 {
			indent = 2
		}
		enc.SetIndent(indent)
		if err := enc.Encode(val); err != nil {
			return nil, fmt.Errorf("Marshaling YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("Marshaling YAML: %w", err)
		}
		return buf.Bytes(), nil

	case FormatTOML:
		// TOML encoder sorts keys of native maps; ordering is not preserved.
		if m, ok := val.(*orderedmap.Map); ok {
			val = orderedmap.Conversion{Object: m}.AsUnorderedStringMaps()
		}

		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		if opts.Indent > 0 {
			enc.Indent = strings.Repeat(" ", opts.Indent)
		}
		if err := enc.Encode(val); err != nil {
			return nil, fmt.Errorf("Marshaling TOML: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("Unknown format '%s'", format)
	}
}
