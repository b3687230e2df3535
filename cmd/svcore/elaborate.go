package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svcore/internal/render"
	"svcore/internal/ui"
)

var elaborateCmd = &cobra.Command{
	Use:   "elaborate [files...]",
	Short: "Parse and elaborate sources, reporting diagnostics",
	Long:  `Elaborate runs Parse followed by Elaborate (§6) and reports diagnostics plus a file and failure count. Each file's top-level declaration names are collected but not printed.`,
	RunE:  runElaborate,
}

func runElaborate(cmd *cobra.Command, args []string) error {
	files, version, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	d, err := buildDriver(cmd)
	if err != nil {
		return err
	}

	showProgress, _ := cmd.Root().PersistentFlags().GetBool("progress")

	var failed int
	if showProgress && len(files) > 1 && isTerminal(os.Stdout) {
		results, err := ui.Run(context.Background(), "elaborating", d, files, version)
		if err != nil {
			return err
		}
		opts := render.Options{Color: wantColor(cmd)}
		failed = render.Summary(cmd.OutOrStdout(), results, opts)
	} else {
		failed, err = runAndReport(cmd, d, files, version)
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("")
	}
	return nil
}
