// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bddkit/robdd/internal/scenarios"
)

// NewRootCommand builds the robddtest command. It takes no arguments and no
// subcommands: running it executes the full scenario battery and reports
// the verdict.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "robddtest",
		Short:         "Run the robdd conformance scenario battery",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd)
		},
	}
	return cmd
}

func runScenarios(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	results := scenarios.RunAll()

	failed := 0
	for _, r := range results {
		if r.Passed() {
			fmt.Fprintf(out, "ok    %s\n", r.Name)
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL  %s: %v\n", r.Name, r.Err)
	}
	fmt.Fprintf(out, "%d/%d scenarios passed\n", len(results)-failed, len(results))

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Errorf("%d scenario(s) failed", failed))
	}
	return nil
}
