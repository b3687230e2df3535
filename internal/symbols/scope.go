package symbols

import "svcore/internal/diag"

// LookupLocation is a textual position used to decide name visibility
// (§4.E): "this query sits at order index i within scope s". Ascending to
// an enclosing scope means swapping in the LookupLocation of the symbol
// that owns that enclosing relationship, not restarting the search at
// index 0 there.
type LookupLocation struct {
	Scope *Scope
	Index int
}

// AtEnd returns the LookupLocation seeing every member currently in s —
// used when elaborating a member that should see all of its scope's
// earlier-and-later siblings, e.g. a scope's own finalization step.
func AtEnd(s *Scope) LookupLocation {
	return LookupLocation{Scope: s, Index: len(s.members)}
}

// Scope is the capability attached to some symbols (§3): an ordered member
// list plus a name index, with exactly one owner symbol. Scopes form a
// tree rooted at the RootSymbol's scope; parentLoc records where in the
// enclosing scope this scope's owner sits, so Lookup can ascend correctly.
type Scope struct {
	owner     Symbol
	members   []Symbol
	byName    map[string][]Symbol
	parentLoc *LookupLocation
}

// NewScope creates a scope owned by owner. parentLoc is nil for $root's
// scope; every other scope supplies the location of its owning symbol
// within the enclosing scope.
func NewScope(owner Symbol, parentLoc *LookupLocation) *Scope {
	return &Scope{
		owner:     owner,
		byName:    make(map[string][]Symbol),
		parentLoc: parentLoc,
	}
}

func (s *Scope) Owner() Symbol { return s.owner }

// AddMember appends sym to the member list and, if named, the name index
// (§4.E). A duplicate name is kept — not overwritten — and the caller is
// expected to have already raised (or to raise) a diagnostic; AddMemberChecked
// does that for the common case.
func (s *Scope) AddMember(sym Symbol) {
	sym.setOrderIndex(len(s.members))
	s.members = append(s.members, sym)
	if name := sym.Name(); name != "" {
		s.byName[name] = append(s.byName[name], sym)
	}
}

// AddMemberChecked adds sym and, if a member with the same name already
// exists in this scope, emits a DuplicateDeclaration diagnostic pointing at
// the new declaration with a note at the first one (§7, scenario 6). The
// first declaration always wins subsequent Find lookups.
func (s *Scope) AddMemberChecked(sym Symbol, sink diag.Sink) {
	if name := sym.Name(); name != "" {
		if existing, ok := s.byName[name]; ok && len(existing) > 0 {
			first := existing[0]
			d := sink.AddError(diag.DuplicateDeclaration, sym.Location(),
				"%q is already declared in this scope", name)
			*d = d.WithNote(first.Location(), "first declared here")
		}
	}
	s.AddMember(sym)
}

// Members returns the scope's members in declaration order (§8 Ordering).
func (s *Scope) Members() []Symbol {
	return s.members
}

// Find performs an exact-name lookup restricted to this scope (§4.E). When
// a name was declared more than once, Find returns the first declaration.
func (s *Scope) Find(name string) Symbol {
	if matches, ok := s.byName[name]; ok && len(matches) > 0 {
		return matches[0]
	}
	return nil
}

// Lookup resolves name starting at loc, honoring LookupLocation visibility
// (§4.E, §8 Lookup visibility): only members of loc.Scope declared at a
// strictly smaller order index than loc.Index are visible; the search then
// ascends to the parent scope using that scope's own parentLoc, terminating
// at $root (parentLoc == nil).
func Lookup(name string, loc LookupLocation) Symbol {
	for scope := loc.Scope; scope != nil; {
		matches := scope.byName[name]
		idx := loc.Index
		for _, m := range matches {
			if m.OrderIndex() < idx {
				return m
			}
		}
		if scope.parentLoc == nil {
			return nil
		}
		next := *scope.parentLoc
		scope = next.Scope
		loc = next
	}
	return nil
}

// StatementBodiedScope specializes Scope with a single opaque statement
// tree (§3): the procedural/sequential body, outside this package's
// concern beyond holding a reference to it. Empty name is permitted for
// the symbol that owns it (an unlabeled begin/end block).
type StatementBodiedScope struct {
	*Scope
	Body any
}

func NewStatementBodiedScope(owner Symbol, parentLoc *LookupLocation, body any) *StatementBodiedScope {
	return &StatementBodiedScope{Scope: NewScope(owner, parentLoc), Body: body}
}
