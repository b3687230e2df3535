package symbols

import "svcore/internal/source"

// CompilationUnitSymbol is constructed once per compilation unit (§4.F):
// name is always empty, its parent is the Root's scope, and its members
// are populated in source order from that unit's top-level declarations.
type CompilationUnitSymbol struct {
	base
	scope *Scope
}

func (c *CompilationUnitSymbol) Scope() *Scope { return c.scope }

// NewCompilationUnit constructs an empty unit under root, ready for its
// members to be added by the caller as each top-level declaration is
// elaborated.
func NewCompilationUnit(loc source.Span, root *RootSymbol) *CompilationUnitSymbol {
	u := &CompilationUnitSymbol{
		base: newBase(CompilationUnit, "", loc, root.Scope()),
	}
	parentLoc := LookupLocation{Scope: root.Scope(), Index: len(root.Scope().Members())}
	u.scope = NewScope(u, &parentLoc)
	return u
}
