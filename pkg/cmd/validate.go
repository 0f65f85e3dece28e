// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/agentschema/agentschema-go/pkg/cmd/ui"
	"github.com/agentschema/agentschema-go/pkg/files"
	"github.com/spf13/cobra"
)

type ValidateOptions struct {
	InputFlags InputFlags
	Debug      bool
}

func NewValidateOptions() *ValidateOptions {
	return &ValidateOptions{}
}

func NewValidateCmd(o *ValidateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate records against a kind",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.InputFlags.Set(cmd.Flags())
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ValidateOptions) Run() error {
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

// RunWithFiles reports every file, then fails if any of them is invalid.
func (o *ValidateOptions) RunWithFiles(filesToProcess []*files.File, ui ui.UI) error {
	sch, err := o.InputFlags.Schema()
	if err != nil {
		return err
	}

	var failed int

	for _, file := range filesToProcess {
		ui.Debugf("validating %s as %s\n", file.Description(), sch.Name)

		_, err := o.InputFlags.Load(file, sch)
		if err != nil {
			failed++
			ui.Warnf("%s\n\n", err)
			continue
		}

		ui.Printf("%s: ok\n", file.Description())
	}

	if failed > 0 {
		return fmt.Errorf("Validation failed for %d of %d file(s)", failed, len(filesToProcess))
	}
	return nil
}
