package diag

import "svcore/internal/source"

// Sink is the abstract "Diagnostics sink" external interface of §6: an
// append-only collection the parser base and elaborator report into. The
// core never depends on the concrete Bag (§3.1) so that callers may supply
// their own collector (e.g. one that also streams to a log).
type Sink interface {
	Add(d Diagnostic)
	AddError(code Code, loc source.Span, message string, args ...any) *Diagnostic
}

// compile-time assertion that Bag satisfies Sink.
var _ Sink = (*Bag)(nil)
