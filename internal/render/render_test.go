package render

import (
	"bytes"
	"strings"
	"testing"

	"svcore/internal/diag"
	"svcore/internal/driver"
	"svcore/internal/source"
)

func TestPretty_NoColorPlainText(t *testing.T) {
	var buf bytes.Buffer
	result := driver.FileResult{
		Path: "a.sv",
		Diagnostics: []driver.RenderedDiagnostic{
			{Severity: diag.SevError, Code: diag.LanguageVersionGate, Span: source.Span{}, Message: "boom"},
		},
	}
	Pretty(&buf, result, Options{Color: false})
	out := buf.String()
	if !strings.Contains(out, "a.sv") || !strings.Contains(out, "boom") || !strings.Contains(out, "error") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("output should contain no ANSI escapes when Color is false, got %q", out)
	}
}

func TestPretty_EmptyDiagnosticsPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, driver.FileResult{Path: "a.sv"}, Options{})
	if buf.Len() != 0 {
		t.Fatalf("expected no output for a clean file, got %q", buf.String())
	}
}

func TestSummary_CountsFailures(t *testing.T) {
	var buf bytes.Buffer
	results := []driver.FileResult{
		{Path: "a.sv"},
		{Path: "b.sv", Diagnostics: []driver.RenderedDiagnostic{{Severity: diag.SevError, Message: "bad"}}},
	}
	failed := Summary(&buf, results, Options{})
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	if !strings.Contains(buf.String(), "2 file(s), 1 failed") {
		t.Fatalf("summary line missing from output: %q", buf.String())
	}
}
