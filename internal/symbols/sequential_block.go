package symbols

// SequentialBlockSymbol.fromSyntax (§4.F): name comes from an optional
// label; an empty name means an unlabeled begin/end block. The statement
// tree is stored on the embedded StatementBodiedScope rather than on the
// symbol itself.
type SequentialBlockSymbol struct {
	base
	*StatementBodiedScope
}

func SequentialBlockFromSyntax(syn BlockStatementSyntax, loc LookupLocation, parent *Scope) *SequentialBlockSymbol {
	s := &SequentialBlockSymbol{
		base: newBase(SequentialBlock, syn.Label, syn.Loc, parent),
	}
	s.StatementBodiedScope = NewStatementBodiedScope(s, &loc, syn.Body)
	return s
}
