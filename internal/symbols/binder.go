package symbols

import (
	"svcore/internal/definition"
)

// Binder is the "Binder / evaluator" external collaborator of §6. The spec
// names three opaque operations (evaluate a constant, resolve an override
// list, look up a definition by name); a fourth, SubstituteMember, is
// added here because §4.F's InstanceSymbol.populate explicitly delegates
// parameter substitution of cloned body members to "the binder (external
// collaborator) through an opaque callback" — there is no other contract
// in §6 that callback could be.
type Binder interface {
	// EvalConstant evaluates expr (an opaque, out-of-scope constant
	// expression syntax) against loc and returns the resulting value, or
	// ok == false if evaluation failed (§7 Constant-evaluation-failure).
	EvalConstant(expr any, loc LookupLocation) (val definition.ConstantValue, ok bool)

	// ResolveOverrides combines a Definition's default parameters with the
	// override list attached to an instantiation, producing the definition's
	// parameter list as a final ParameterMetadata in declaration order.
	ResolveOverrides(def *definition.Definition, overrides any, loc LookupLocation) []definition.ParameterMetadata

	// LookupDefinition finds the Definition named name, visible from scope.
	// ok == false means no such definition exists (§7 Unresolved-definition).
	LookupDefinition(name string, scope *Scope) (def *definition.Definition, ok bool)

	// SubstituteMember clones one body member of a Definition into an
	// instance's scope, with that instance's parameter values substituted
	// into whatever expressions the member carries. The only guarantee
	// §4.F asks of this: symbol identities within one instance must be
	// disjoint from those of every other instance of the same Definition.
	SubstituteMember(member Symbol, params []definition.ParameterMetadata, into *Scope) Symbol
}
