package diag

import "svcore/internal/source"

// Diagnostic is a single append-only record as described by the external
// "Diagnostics sink" interface of §6: a code, a primary location, and
// arguments rendered into the message. Notes attach secondary locations
// (e.g. pointing at the first declaration of a duplicate name).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Primary  source.Span
	Message  string
	Args     []any
	Notes    []Note
}

// Note is a secondary location attached to a Diagnostic, e.g. "first
// declared here" for a redeclaration.
type Note struct {
	Span source.Span
	Msg  string
}

// New builds a Diagnostic at the given severity.
func New(sev Severity, code Code, primary source.Span, message string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  message,
		Args:     args,
	}
}

// WithNote returns a copy of d with an additional secondary location.
func (d Diagnostic) WithNote(span source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: span, Msg: msg})
	return d
}
