package symbols

import "svcore/internal/source"

// TopInstanceStrategy decides which module instances are roots of the
// design hierarchy (§4.G, §9 resolved open question): Auto uses the
// referenced-by-nobody heuristic; Explicit uses a caller-provided
// allowlist of definition names (typically fed by a project manifest's
// top-module overrides). Compilation defaults to Auto.
type TopInstanceStrategy func(candidates []*InstanceSymbol, referenced map[string]bool) []*InstanceSymbol

// Auto selects every candidate instance whose Definition name is never
// referenced by another instantiation anywhere in the compilation.
func Auto(candidates []*InstanceSymbol, referenced map[string]bool) []*InstanceSymbol {
	var tops []*InstanceSymbol
	for _, c := range candidates {
		if c.Def == nil || !referenced[c.Def.Name] {
			tops = append(tops, c)
		}
	}
	return tops
}

// Explicit builds a TopInstanceStrategy restricted to the given set of
// definition names, ignoring the referenced-by-nobody heuristic entirely.
func Explicit(names []string) TopInstanceStrategy {
	allow := make(map[string]bool, len(names))
	for _, n := range names {
		allow[n] = true
	}
	return func(candidates []*InstanceSymbol, _ map[string]bool) []*InstanceSymbol {
		var tops []*InstanceSymbol
		for _, c := range candidates {
			if c.Def != nil && allow[c.Def.Name] {
				tops = append(tops, c)
			}
		}
		return tops
	}
}

// RootSymbol holds the ordered list of top-level module instances and the
// ordered list of compilation units (§3, §4.G). There is exactly one Root
// per Compilation; its name is the literal "$root".
type RootSymbol struct {
	base
	scope            *Scope
	TopInstances     []*InstanceSymbol
	CompilationUnits []*CompilationUnitSymbol
}

func (r *RootSymbol) Scope() *Scope { return r.scope }

// NewRoot constructs an empty RootSymbol. Compilation units are added to
// its scope as they are created; Finalize computes TopInstances once
// elaboration of every unit has completed, without adding them to the scope.
func NewRoot() *RootSymbol {
	r := &RootSymbol{base: newBase(Root, "$root", source.Span{}, nil)}
	r.scope = NewScope(r, nil)
	return r
}

// Finalize runs strategy (Auto when nil) over the given candidates and
// records the result as r.TopInstances (§4.G). It does not walk r's
// compilation units for further instances.
func (r *RootSymbol) Finalize(candidates []*InstanceSymbol, referenced map[string]bool, strategy TopInstanceStrategy) {
	if strategy == nil {
		strategy = Auto
	}
	r.TopInstances = strategy(candidates, referenced)
}
