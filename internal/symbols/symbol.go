package symbols

import "svcore/internal/source"

// Symbol is a named entity with a kind, an optional name, a source
// location, and a back-reference to its containing Scope (§3). Concrete
// symbol types embed base and add whatever extra state their kind needs.
type Symbol interface {
	Kind() Kind
	Name() string
	Location() source.Span
	ParentScope() *Scope
	IsKind(k Kind) bool

	// OrderIndex is this symbol's position within its parent scope's
	// member list, used by LookupLocation visibility checks (§4.E). It is
	// assigned once, by Scope.AddMember, and is unexported because nothing
	// outside the scope/lookup machinery should read or set it directly.
	OrderIndex() int
	setOrderIndex(i int)
}

// base is the shared state every concrete Symbol embeds.
type base struct {
	kind   Kind
	name   string
	loc    source.Span
	parent *Scope
	order  int
}

func (b *base) Kind() Kind            { return b.kind }
func (b *base) Name() string          { return b.name }
func (b *base) Location() source.Span { return b.loc }
func (b *base) ParentScope() *Scope   { return b.parent }
func (b *base) IsKind(k Kind) bool    { return b.kind == k }
func (b *base) OrderIndex() int       { return b.order }
func (b *base) setOrderIndex(i int)   { b.order = i }

func newBase(kind Kind, name string, loc source.Span, parent *Scope) base {
	return base{kind: kind, name: name, loc: loc, parent: parent}
}
