package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"svcore/internal/diag"
	"svcore/internal/langver"
	"svcore/internal/source"
)

// fakeCompile treats the file's content as a tiny DSL: a line "REQUIRES:x"
// gates on language version x (emitting diag.LanguageVersionGate if the
// compiled-against version is older), and every other non-blank line is
// reported as a top-level declaration name.
func fakeCompile(_ context.Context, path string, content []byte, version langver.Version) ([]*diag.Diagnostic, []string, error) {
	var diags []*diag.Diagnostic
	var top []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "REQUIRES:"); ok {
			required, err := langver.Parse(rest)
			if err != nil {
				return nil, nil, err
			}
			if !version.AtLeast(required) {
				d := diag.New(diag.SevError, diag.LanguageVersionGate, source.Span{Start: 0, End: 1},
					"%s requires language version %s or later", path, required)
				diags = append(diags, &d)
			}
			continue
		}
		top = append(top, line)
	}
	return diags, top, nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// Scenario 7 (§8.1): driving N independent files concurrently produces the
// same per-file results as driving them one at a time.
func TestRunFiles_ConcurrentMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.sv", "ModA\nModB\n"),
		writeFile(t, dir, "b.sv", "ModC\n"),
		writeFile(t, dir, "c.sv", "REQUIRES:1800-2017\nModD\n"),
	}

	seq := &Driver{Compile: fakeCompile, MaxParallel: 1}
	par := &Driver{Compile: fakeCompile, MaxParallel: 8}

	seqResults, err := seq.RunFiles(context.Background(), paths, langver.V1800_2012)
	if err != nil {
		t.Fatalf("sequential run failed: %v", err)
	}
	parResults, err := par.RunFiles(context.Background(), paths, langver.V1800_2012)
	if err != nil {
		t.Fatalf("concurrent run failed: %v", err)
	}

	if len(seqResults) != len(parResults) {
		t.Fatalf("result count mismatch: %d vs %d", len(seqResults), len(parResults))
	}
	for i := range seqResults {
		a, b := seqResults[i], parResults[i]
		if a.Path != b.Path || len(a.Diagnostics) != len(b.Diagnostics) || len(a.TopLevel) != len(b.TopLevel) {
			t.Fatalf("result %d differs: %+v vs %+v", i, a, b)
		}
	}
	// The gated file should fail the version gate under 1800-2012.
	if !parResults[2].HasErrors() {
		t.Fatalf("expected c.sv to fail the version gate")
	}
}

// Scenario 8 (§8.1): a warm cache reports identical diagnostics to a cold
// run over an unchanged file; flipping one byte invalidates that entry.
func TestCache_SoundnessAndInvalidation(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	cache, err := OpenCache(cacheDir)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	path := writeFile(t, dir, "a.sv", "REQUIRES:1800-2017\nModA\n")

	d := &Driver{Compile: fakeCompile, Cache: cache}
	cold, err := d.RunFiles(context.Background(), []string{path}, langver.V1800_2012)
	if err != nil {
		t.Fatalf("cold run failed: %v", err)
	}
	if cold[0].FromCache {
		t.Fatalf("first run should be a cache miss")
	}

	warm, err := d.RunFiles(context.Background(), []string{path}, langver.V1800_2012)
	if err != nil {
		t.Fatalf("warm run failed: %v", err)
	}
	if !warm[0].FromCache {
		t.Fatalf("second run over an unchanged file should be a cache hit")
	}
	if len(warm[0].Diagnostics) != len(cold[0].Diagnostics) || warm[0].Diagnostics[0].Message != cold[0].Diagnostics[0].Message {
		t.Fatalf("cached diagnostics differ from the cold run: %+v vs %+v", warm[0].Diagnostics, cold[0].Diagnostics)
	}

	// Flip one byte: the whole entry is invalidated, not incrementally
	// patched (§6.1: "this is a whole-file cache, not incremental re-parsing").
	if err := os.WriteFile(path, []byte("REQUIRES:1800-2017\nModB\n"), 0o644); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}
	afterEdit, err := d.RunFiles(context.Background(), []string{path}, langver.V1800_2012)
	if err != nil {
		t.Fatalf("post-edit run failed: %v", err)
	}
	if afterEdit[0].FromCache {
		t.Fatalf("a changed file must not be served from the cache")
	}
	if len(afterEdit[0].TopLevel) != 1 || afterEdit[0].TopLevel[0] != "ModB" {
		t.Fatalf("expected the fresh compile to see the edited content, got %v", afterEdit[0].TopLevel)
	}
}

// Scenario 9 (§8.1): compiling against a version older than a file's
// required edition fails with a LanguageVersionGate diagnostic instead of
// silently succeeding.
func TestLanguageVersionGate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.sv", "REQUIRES:1800-2017\nModA\n")
	d := &Driver{Compile: fakeCompile}

	gated, err := d.RunFiles(context.Background(), []string{path}, langver.V1800_2012)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !gated[0].HasErrors() {
		t.Fatalf("expected a version-gate error under 1800-2012")
	}
	if gated[0].Diagnostics[0].Code != diag.LanguageVersionGate {
		t.Fatalf("expected LanguageVersionGate, got %v", gated[0].Diagnostics[0].Code)
	}

	ungated, err := d.RunFiles(context.Background(), []string{path}, langver.V1800_2017)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if ungated[0].HasErrors() {
		t.Fatalf("expected no version-gate error under 1800-2017")
	}
}
