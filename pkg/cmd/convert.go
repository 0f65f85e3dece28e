// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/agentschema/agentschema-go/pkg/cmd/ui"
	"github.com/agentschema/agentschema-go/pkg/dataformat"
	"github.com/agentschema/agentschema-go/pkg/files"
	"github.com/spf13/cobra"
)

type ConvertOptions struct {
	InputFlags      InputFlags
	Output          string
	Indent          int
	OutputDirectory string
	Debug           bool
}

func NewConvertOptions() *ConvertOptions {
	return &ConvertOptions{}
}

func NewConvertCmd(o *ConvertOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert",
		Aliases: []string{"c"},
		Short:   "Load records and print them in another format",
		Example: "agentschema convert -k ContainerScale -f scale.json -o yaml",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.InputFlags.Set(cmd.Flags())
	cmd.Flags().StringVarP(&o.Output, "output", "o", string(dataformat.FormatYAML), "Output format (yaml, json, toml)")
	cmd.Flags().IntVar(&o.Indent, "indent", 2, "Spaces per indentation level (0 prints compact JSON)")
	cmd.Flags().StringVar(&o.OutputDirectory, "output-directory", "", "Write one file per input into this directory instead of printing")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ConvertOptions) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	filesToProcess, err := o.InputFlags.ResolveFiles()
	if err != nil {
		return err
	}

	return o.RunWithFiles(filesToProcess, ui)
}

func (o *ConvertOptions) RunWithFiles(filesToProcess []*files.File, ui ui.UI) error {
	sch, err := o.InputFlags.Schema()
	if err != nil {
		return err
	}

	format, err := dataformat.ParseFormat(o.Output)
	if err != nil {
		return err
	}

	if format == dataformat.FormatTOML && len(filesToProcess) > 1 && len(o.OutputDirectory) == 0 {
		return fmt.Errorf("Expected --output-directory when converting multiple files to TOML")
	}

	var outputFiles []files.OutputFile

	for i, file := range filesToProcess {
		rec, err := o.InputFlags.Load(file, sch)
		if err != nil {
			return err
		}

		bs, err := rec.ToText(format, nil, dataformat.EncodeOpts{Indent: o.Indent})
		if err != nil {
			return fmt.Errorf("Converting %s: %w", file.Description(), err)
		}

		if len(o.OutputDirectory) > 0 {
			outputFiles = append(outputFiles, files.NewOutputFile(file.RelativePathWithFormat(format), bs))
			continue
		}

		switch format {
		case dataformat.FormatYAML:
			if i > 0 {
				ui.Printf("---\n")
			}
			ui.Printf("%s", bs)
		case dataformat.FormatJSON:
			ui.Printf("%s\n", bs)
		default:
			ui.Printf("%s", bs)
		}
	}

	if len(o.OutputDirectory) > 0 {
		return files.NewOutputDirectory(o.OutputDirectory, outputFiles, ui).Write()
	}
	return nil
}
