package symbols

// PackageSymbol.fromSyntax (§4.F): name taken from the syntax header,
// members populated from the body. A package's own parameters are
// permitted but never propagate to instances — unlike a module/interface
// Definition's parameters, which do (§4.F InstanceSymbol).
type PackageSymbol struct {
	base
	scope *Scope
}

func (p *PackageSymbol) Scope() *Scope { return p.scope }

// PackageFromSyntax elaborates a package declaration. Member elaboration
// for the body is driven by the caller, which adds each resulting member
// to the returned package's scope in source order.
func PackageFromSyntax(syn ModuleDeclarationSyntax, loc LookupLocation, parent *Scope) *PackageSymbol {
	p := &PackageSymbol{
		base: newBase(Package, syn.Name, syn.Loc, parent),
	}
	p.scope = NewScope(p, &loc)
	return p
}
