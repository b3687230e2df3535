// Command svcore is the CLI front end over the ambient driver (§10): it
// loads a project manifest or explicit file list, drives Parse->Elaborate
// for every source file, and prints diagnostics and a pass/fail summary.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"svcore/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "svcore",
	Short: "SystemVerilog front-end compiler core",
	Long:  `svcore parses and elaborates SystemVerilog sources into a navigable symbol/scope model.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(elaborateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (not applied: every diagnostic is shown)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers for multi-file runs (0=auto)")
	rootCmd.PersistentFlags().String("language-version", "", "override the manifest's language version (e.g. 1800-2017)")
	rootCmd.PersistentFlags().Bool("progress", false, "show a live progress display for multi-file runs")
	rootCmd.PersistentFlags().String("cache-dir", "", "compile-result cache directory (empty disables caching)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func wantColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || (mode == "auto" && isTerminal(os.Stdout))
}
