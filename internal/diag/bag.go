package diag

import (
	"sort"

	"svcore/internal/source"
)

// Bag is the concrete, bounded Sink implementation (§3.1) used by the
// ambient driver and CLI. Items are stored behind pointers so that the
// *Diagnostic returned by AddError stays valid across further appends,
// satisfying the "mutable diagnostic reference" contract of §6.
type Bag struct {
	items []*Diagnostic
	max   int
}

// NewBag creates a Bag that silently stops accepting diagnostics past max
// entries. max <= 0 means unbounded.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add appends d, subject to the bag's capacity.
func (b *Bag) Add(d Diagnostic) {
	if b.max > 0 && len(b.items) >= b.max {
		return
	}
	cpy := d
	b.items = append(b.items, &cpy)
}

// AddError is sugar for constructing and adding an error-severity
// Diagnostic, returning it for further annotation (e.g. WithNote).
func (b *Bag) AddError(code Code, loc source.Span, message string, args ...any) *Diagnostic {
	d := New(SevError, code, loc, message, args...)
	if b.max > 0 && len(b.items) >= b.max {
		return &d
	}
	b.items = append(b.items, &d)
	return &d
}

// Items returns a read-only view of every diagnostic added so far, in
// insertion order.
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Len reports how many diagnostics are currently held.
func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any diagnostic is at Error severity or above.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Merge appends every diagnostic from other, raising this bag's capacity if
// needed to hold them all.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	need := len(b.items) + len(other.items)
	if b.max > 0 && need > b.max {
		b.max = need
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, then start offset, then severity
// (descending), then code — a stable, deterministic order for rendering.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
