// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/agentschema/agentschema-go/pkg/agentschema"
	"github.com/agentschema/agentschema-go/pkg/cmd/ui"
	"github.com/agentschema/agentschema-go/pkg/dataformat"
	"github.com/agentschema/agentschema-go/pkg/schema"
	"github.com/spf13/cobra"
)

type SchemaOptions struct {
	Kinds  []string
	Output string
}

func NewSchemaOptions() *SchemaOptions {
	return &SchemaOptions{}
}

func NewSchemaCmd(o *SchemaOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print kinds as an OpenAPI v3.0 document",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Kinds, "kind", "k", nil, "Record kind to include (can be specified multiple times; defaults to all)")
	cmd.Flags().StringVarP(&o.Output, "output", "o", string(dataformat.FormatYAML), "Output format (yaml, json)")
	return cmd
}

func (o *SchemaOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(false))
}

func (o *SchemaOptions) RunWithUI(ui ui.UI) error {
	schemas := agentschema.All()

	if len(o.Kinds) > 0 {
		schemas = nil
		for _, kind := range o.Kinds {
			sch, err := agentschema.Lookup(kind)
			if err != nil {
				return err
			}
			schemas = append(schemas, sch)
		}
	}

	format, err := dataformat.ParseFormat(o.Output)
	if err != nil {
		return err
	}

	bs, err := dataformat.Encode(schema.NewOpenAPIDocument(schemas...), format, dataformat.EncodeOpts{Indent: 2})
	if err != nil {
		return err
	}

	if format == dataformat.FormatJSON {
		ui.Printf("%s\n", bs)
	} else {
		ui.Printf("%s", bs)
	}
	return nil
}
