// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/agentschema/agentschema-go/pkg/agentschema"
	"github.com/agentschema/agentschema-go/pkg/dataformat"
	"github.com/agentschema/agentschema-go/pkg/files"
	"github.com/agentschema/agentschema-go/pkg/schema"
)

// CmdFlags decouples flag registration from cobra.Command/flags concrete types.
type CmdFlags interface {
	BoolVar(p *bool, name string, value bool, usage string)
	StringVar(p *string, name string, value string, usage string)
	StringVarP(p *string, name, shorthand string, value string, usage string)
	StringArrayVarP(p *[]string, name, shorthand string, value []string, usage string)
}

// InputFlags are shared by commands that load records from files.
type InputFlags struct {
	Files       []string
	Kind        string
	InputFormat string
	Strict      bool
}

func (s *InputFlags) Set(flags CmdFlags) {
	flags.StringArrayVarP(&s.Files, "file", "f", nil, "File (ie local path, directory, HTTP URL, -) (can be specified multiple times)")
	flags.StringVarP(&s.Kind, "kind", "k", "", fmt.Sprintf("Record kind (one of: %s)", strings.Join(agentschema.Kinds(), ", ")))
	flags.StringVar(&s.InputFormat, "input-format", "", "Input format instead of guessing from file extension (json, yaml, toml)")
	flags.BoolVar(&s.Strict, "strict", false, "Reject keys not declared by the kind")
}

func (s *InputFlags) Schema() (*schema.Schema, error) {
	if len(s.Kind) == 0 {
		return nil, fmt.Errorf("Expected --kind to be specified (known kinds: %s)", strings.Join(agentschema.Kinds(), ", "))
	}
	return agentschema.Lookup(s.Kind)
}

// ResolveFiles turns -f values into files with a known format.
func (s *InputFlags) ResolveFiles() ([]*files.File, error) {
	if len(s.Files) == 0 {
		return nil, fmt.Errorf("Expected at least one file to be specified via --file (-f)")
	}
	fs, err := files.NewFiles(s.Files)
	if err != nil {
		return nil, err
	}
	for _, file := range fs {
		if err := s.overrideFormat(file); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

func (s *InputFlags) overrideFormat(file *files.File) error {
	if len(s.InputFormat) == 0 {
		return nil
	}
	format, err := dataformat.ParseFormat(s.InputFormat)
	if err != nil {
		return err
	}
	file.OverrideFormat(format)
	return nil
}

// Load decodes file and checks it against sch.
func (s *InputFlags) Load(file *files.File, sch *schema.Schema) (*schema.Record, error) {
	if err := s.overrideFormat(file); err != nil {
		return nil, err
	}
	format := file.Format()
	if format == dataformat.FormatUnknown {
		return nil, fmt.Errorf("Unable to determine format of %s (hint: use --input-format)", file.Description())
	}

	data, err := file.Bytes()
	if err != nil {
		return nil, err
	}

	rec, err := sch.FromText(data, format, &schema.LoadContext{DisallowUnknownKeys: s.Strict})
	if err != nil {
		return nil, fmt.Errorf("Loading %s: %w", file.Description(), err)
	}
	return rec, nil
}
