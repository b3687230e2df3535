package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse sources and report diagnostics",
	Long:  `Parse runs the same per-file compile as elaborate (declaration scan, then Elaborate), without the progress display, and reports any diagnostics produced.`,
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	files, version, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	d, err := buildDriver(cmd)
	if err != nil {
		return err
	}
	failed, err := runAndReport(cmd, d, files, version)
	if err != nil {
		return err
	}
	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("")
	}
	return nil
}
