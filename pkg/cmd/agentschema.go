// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/agentschema/agentschema-go/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type AgentSchemaOptions struct{}

func NewDefaultAgentSchemaOptions() *AgentSchemaOptions {
	return &AgentSchemaOptions{}
}

func NewDefaultAgentSchemaCmd() *cobra.Command {
	return NewAgentSchemaCmd(NewDefaultAgentSchemaOptions())
}

func NewAgentSchemaCmd(_ *AgentSchemaOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agentschema",
		Version: version.Version,
		Short:   "agentschema validates and converts schema records",
		Long: `agentschema validates and converts schema records.

Records are flat mappings (JSON, YAML or TOML) checked against a registered
kind. Run 'agentschema kinds' to list them.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewKindsCmd(NewKindsOptions()))
	cmd.AddCommand(NewValidateCmd(NewValidateOptions()))
	cmd.AddCommand(NewConvertCmd(NewConvertOptions()))
	cmd.AddCommand(NewSchemaCmd(NewSchemaOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
