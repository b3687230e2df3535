// Package render prints driver.FileResult diagnostics for a terminal,
// grounded on the reference stack's diagfmt.Pretty shape (color flag,
// path mode, note visibility) but backed by a real implementation instead
// of that package's unfinished body.
package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"svcore/internal/diag"
	"svcore/internal/driver"
)

// PathMode controls how a file path is rendered.
type PathMode uint8

const (
	PathModeAsGiven PathMode = iota
	PathModeAbsolute
	PathModeBasename
)

// Options configures Pretty.
type Options struct {
	Color    bool
	PathMode PathMode
}

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	infoStyle    = color.New(color.FgCyan)
	pathStyle    = color.New(color.FgWhite, color.Bold)
)

// Pretty renders one file's diagnostics, one per line, in the style
// "<path>: <severity> <code>: <message>".
func Pretty(w io.Writer, result driver.FileResult, opts Options) {
	path := displayPath(result.Path, opts.PathMode)

	if result.Err != nil {
		fmt.Fprintf(w, "%s: %s\n", renderPath(path, opts.Color), renderSeverityWord(opts.Color, diag.SevFatal, result.Err.Error()))
		return
	}
	if len(result.Diagnostics) == 0 {
		return
	}
	for _, d := range result.Diagnostics {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			renderPath(path, opts.Color),
			renderSeverity(opts.Color, d.Severity),
			d.Code,
			d.Message,
		)
	}
}

// Summary writes every file's diagnostics through Pretty, then one final
// line with the file and failure counts.
func Summary(w io.Writer, results []driver.FileResult, opts Options) (failed int) {
	for _, r := range results {
		Pretty(w, r, opts)
		if r.Err != nil || r.HasErrors() {
			failed++
		}
	}
	fmt.Fprintf(w, "%d file(s), %d failed\n", len(results), failed)
	return failed
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}

func renderPath(path string, useColor bool) string {
	if !useColor {
		return path
	}
	return pathStyle.Sprint(path)
}

func renderSeverity(useColor bool, sev diag.Severity) string {
	return renderSeverityWord(useColor, sev, sev.String())
}

func renderSeverityWord(useColor bool, sev diag.Severity, word string) string {
	if !useColor {
		return word
	}
	switch {
	case sev >= diag.SevError:
		return errorStyle.Sprint(word)
	case sev == diag.SevWarning:
		return warningStyle.Sprint(word)
	default:
		return infoStyle.Sprint(word)
	}
}
