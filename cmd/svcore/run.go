package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"svcore/internal/driver"
	"svcore/internal/langver"
	"svcore/internal/project"
	"svcore/internal/render"
)

// resolveRun figures out the file list and language version for a run:
// either an explicit path list from args, or the nearest project manifest
// above the current directory.
func resolveRun(cmd *cobra.Command, args []string) ([]string, langver.Version, error) {
	version := langver.Latest

	if override, _ := cmd.Root().PersistentFlags().GetString("language-version"); override != "" {
		v, err := langver.Parse(override)
		if err != nil {
			return nil, 0, err
		}
		version = v
	}

	if len(args) > 0 {
		return args, version, nil
	}

	m, ok, err := project.Load(".")
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, fmt.Errorf("no svcore.toml found and no files given; pass files explicitly or add a manifest")
	}
	files, err := m.ResolvedSources()
	if err != nil {
		return nil, 0, err
	}
	if override, _ := cmd.Root().PersistentFlags().GetString("language-version"); override == "" {
		if v, err := m.LanguageVersion(); err == nil {
			version = v
		}
	}
	return files, version, nil
}

func buildDriver(cmd *cobra.Command) (*driver.Driver, error) {
	maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")
	cacheDir, _ := cmd.Root().PersistentFlags().GetString("cache-dir")

	_ = maxDiag // not applied: compileFile builds each Compilation with an unbounded diagnostic bag

	d := &driver.Driver{Compile: compileFile, MaxParallel: jobs}
	if cacheDir != "" {
		c, err := driver.OpenCache(cacheDir)
		if err != nil {
			return nil, err
		}
		d.Cache = c
	}
	return d, nil
}

// runAndReport drives files through d and prints each file's diagnostics,
// returning the number of files that failed.
func runAndReport(cmd *cobra.Command, d *driver.Driver, files []string, version langver.Version) (int, error) {
	results, err := d.RunFiles(context.Background(), files, version)
	if err != nil {
		return 0, err
	}
	opts := render.Options{Color: wantColor(cmd)}
	failed := render.Summary(cmd.OutOrStdout(), results, opts)
	return failed, nil
}
