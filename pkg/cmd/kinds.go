// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/agentschema/agentschema-go/pkg/agentschema"
	"github.com/agentschema/agentschema-go/pkg/cmd/ui"
	"github.com/agentschema/agentschema-go/pkg/schema"
	"github.com/spf13/cobra"
)

type KindsOptions struct {
	Debug bool
}

func NewKindsOptions() *KindsOptions {
	return &KindsOptions{}
}

func NewKindsCmd(o *KindsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List record kinds and their fields",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *KindsOptions) Run() error {
	return o.RunWithSchemas(agentschema.All(), ui.NewTTY(o.Debug))
}

func (o *KindsOptions) RunWithSchemas(schemas []*schema.Schema, ui ui.UI) error {
	w := tabwriter.NewWriter(ui.Stdout(), 0, 0, 2, ' ', 0)

	for i, sch := range schemas {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\t%s\n", sch.Name, sch.Description)

		for _, field := range sch.Fields() {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", field.Name, field.Type, fieldConstraints(field))
		}
	}

	return w.Flush()
}

func fieldConstraints(field schema.Field) string {
	result := "optional"
	if field.Required {
		result = "required"
	}
	if field.Default != nil {
		result += fmt.Sprintf(", default %v", field.Default)
	}
	if len(field.Format) > 0 {
		result += ", format " + field.Format
	}
	if field.Minimum != nil {
		result += fmt.Sprintf(", minimum %d", *field.Minimum)
	}
	return result
}
