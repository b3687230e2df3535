package symbols

import (
	"svcore/internal/definition"
)

// InstanceSymbol is the shared shape of ModuleInstance, InterfaceInstance,
// and ProgramInstance symbols (§3): each owns a scope populated by cloning
// its Definition's body, substituted for this instance's parameter values.
type InstanceSymbol struct {
	base
	scope  *Scope
	Def    *definition.Definition
	Params []definition.ParameterMetadata
}

func (i *InstanceSymbol) Scope() *Scope                              { return i.scope }
func (i *InstanceSymbol) Definition() *definition.Definition         { return i.Def }
func (i *InstanceSymbol) Parameters() []definition.ParameterMetadata { return i.Params }

func newInstance(kind Kind, name string, syn HierarchicalInstanceSyntax, def *definition.Definition, parent *Scope, loc LookupLocation) *InstanceSymbol {
	inst := &InstanceSymbol{
		base: newBase(kind, name, syn.Loc, parent),
		Def:  def,
	}
	inst.scope = NewScope(inst, &loc)
	return inst
}

func kindForDefinition(k definition.Kind) Kind {
	switch k {
	case definition.Interface:
		return InterfaceInstance
	case definition.Program:
		return ProgramInstance
	default:
		return ModuleInstance
	}
}

// InstanceSymbolFromSyntax elaborates a HierarchyInstantiationSyntax
// (§4.F): it resolves the referenced Definition by name from parent; for
// each named instance in syn, it builds the right concrete instance kind,
// resolves ParameterMetadata by combining the definition's defaults with
// that instance's overrides, and appends the result to outResults in source
// order. It does not populate the instances' scopes: body members are added
// afterwards through AddSubstitutedMember. Returns false if the definition could not
// be resolved at all (§7 Unresolved-definition) — outResults is left
// untouched in that case.
func InstanceSymbolFromSyntax(b Binder, syn HierarchyInstantiationSyntax, loc LookupLocation, parent *Scope, outResults *[]*InstanceSymbol) bool {
	def, ok := b.LookupDefinition(syn.DefinitionName, parent)
	if !ok {
		return false
	}
	kind := kindForDefinition(def.Kind)

	for _, instSyn := range syn.Instances {
		params := b.ResolveOverrides(def, instSyn.Overrides, loc)
		inst := newInstance(kind, instSyn.InstanceName, instSyn, def, parent, loc)
		inst.Params = params
		*outResults = append(*outResults, inst)
	}
	return true
}

// AddSubstitutedMember populates the instance (§4.F InstanceSymbol.populate)
// one definition body member at a time: it substitutes member's parameter
// references via the binder and records the result in this instance's
// scope, in source order. Each instance gets its own substituted symbols,
// so identities never collide across sibling instances of one Definition.
func (i *InstanceSymbol) AddSubstitutedMember(b Binder, member Symbol) Symbol {
	sub := b.SubstituteMember(member, i.Params, i.scope)
	i.scope.AddMember(sub)
	return sub
}
