package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Elaborate sources and exit nonzero on any error diagnostic",
	Long:  `Check is the CI-friendly entry point: it runs the same Parse+Elaborate pipeline as elaborate but keeps output minimal and reports only pass/fail.`,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, version, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	d, err := buildDriver(cmd)
	if err != nil {
		return err
	}

	results, err := d.RunFiles(context.Background(), files, version)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
			failed++
			continue
		}
		if r.HasErrors() {
			failed++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) checked, %d failed\n", len(results), failed)
	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("")
	}
	return nil
}
