// Package driver turns a ProjectManifest (or an explicit file list) into N
// independent Compilations, running them concurrently with bounded
// parallelism and a whole-file compile-result cache (§6.1, §10). None of
// this participates in parsing or elaboration semantics (§5): it only
// calls the core's public Parse/Elaborate operations once per file.
package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"svcore/internal/diag"
	"svcore/internal/langver"
	"svcore/internal/project"
	"svcore/internal/source"
)

// CompileFunc drives one file through Parse -> Elaborate and reports the
// queued diagnostics plus the names of its top-level declarations. The
// concrete grammar behind Parse is out of scope for this repository (§1),
// so the driver takes it as an external collaborator rather than calling
// into a concrete parser package itself.
type CompileFunc func(ctx context.Context, path string, content []byte, version langver.Version) ([]*diag.Diagnostic, []string, error)

// RenderedDiagnostic is a cache-stable, display-ready projection of a
// diag.Diagnostic: exactly the shape the compile-result cache can hold
// (§6.1), also used to report live (non-cached) results so a caller sees
// one uniform type regardless of cache hit/miss.
type RenderedDiagnostic struct {
	Severity diag.Severity
	Code     diag.Code
	Span     source.Span
	Message  string
}

// FileResult is one file's outcome from a driver run.
type FileResult struct {
	Path        string
	Diagnostics []RenderedDiagnostic
	TopLevel    []string
	FromCache   bool
	Err         error
}

// HasErrors reports whether any diagnostic in r is at SevError or above.
func (r FileResult) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// Driver orchestrates many independent Compilations (§5 "Ambient
// concurrency"): each file gets its own arena and diagnostic sink, so
// fanning out across goroutines is safe by construction.
type Driver struct {
	Compile     CompileFunc
	Cache       *Cache // nil disables the compile-result cache
	MaxParallel int    // <= 0 means runtime.NumCPU()

	// Progress, if non-nil, receives one FileResult as each file finishes,
	// in completion order (not input order) — a progress UI's feed.
	Progress chan<- FileResult
}

func (d *Driver) limit() int {
	if d.MaxParallel > 0 {
		return d.MaxParallel
	}
	return runtime.NumCPU()
}

// RunManifest resolves m's source list and compiles every file concurrently
// against m's configured LanguageVersion.
func (d *Driver) RunManifest(ctx context.Context, m *project.Manifest) ([]FileResult, error) {
	version, err := m.LanguageVersion()
	if err != nil {
		return nil, err
	}
	files, err := m.ResolvedSources()
	if err != nil {
		return nil, err
	}
	return d.RunFiles(ctx, files, version)
}

// RunFiles compiles each path in paths concurrently, bounded by
// d.limit(), and returns one FileResult per input path in the same order
// paths was given — order-preserving even though compilation itself
// happens out of order (§8.1 scenario 7: concurrent driving must match a
// sequential run's per-file results).
func (d *Driver) RunFiles(ctx context.Context, paths []string, version langver.Version) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.limit())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result := d.compileOne(gctx, path, version)
			results[i] = result
			if d.Progress != nil {
				d.Progress <- result
			}
			return nil
		})
	}
	// Errors are per-file (carried in FileResult.Err) rather than aborting
	// the whole batch, so Wait only ever reports a cancellation.
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (d *Driver) compileOne(ctx context.Context, path string, version langver.Version) FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("driver: failed to read %q: %w", path, err)}
	}

	versionStr := version.String()
	var key string
	if d.Cache != nil {
		key = Key(content, versionStr)
		if entry, ok := d.Cache.Lookup(key); ok && entry.ContentHash == key && entry.Version == versionStr {
			return FileResult{
				Path:        path,
				Diagnostics: fromCachedDiagnostics(entry.Diagnostics),
				TopLevel:    entry.TopLevel,
				FromCache:   true,
			}
		}
	}

	diags, topLevel, err := d.Compile(ctx, path, content, version)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}

	result := FileResult{
		Path:        path,
		Diagnostics: renderDiagnostics(diags),
		TopLevel:    topLevel,
	}

	if d.Cache != nil {
		entry := cacheEntry{
			ContentHash: key,
			Version:     versionStr,
			Diagnostics: toCachedDiagnostics(diags),
			TopLevel:    topLevel,
		}
		// A cache-write failure degrades to "always recompile this file",
		// not a compile failure, so it is dropped rather than surfaced.
		_ = d.Cache.Store(key, entry)
	}

	return result
}

func renderDiagnostics(items []*diag.Diagnostic) []RenderedDiagnostic {
	out := make([]RenderedDiagnostic, 0, len(items))
	for _, d := range items {
		msg := d.Message
		if len(d.Args) > 0 {
			msg = fmt.Sprintf(d.Message, d.Args...)
		}
		out = append(out, RenderedDiagnostic{
			Severity: d.Severity,
			Code:     d.Code,
			Span:     d.Primary,
			Message:  msg,
		})
	}
	return out
}

func fromCachedDiagnostics(items []cachedDiagnostic) []RenderedDiagnostic {
	out := make([]RenderedDiagnostic, 0, len(items))
	for _, d := range items {
		out = append(out, RenderedDiagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Span:     source.Span{Start: d.FileOffset, End: d.FileEndOff},
			Message:  d.RenderedMsg,
		})
	}
	return out
}
