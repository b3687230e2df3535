package symbols

import (
	"svcore/internal/definition"
	"svcore/internal/diag"
)

// maxLoopGenerateIterations is the iteration cap for loop-generate
// expansion (§4.F): "an implementation-defined maximum (must be >= 2^16)".
const maxLoopGenerateIterations = 1 << 16

// ParameterSymbol is the implicit genvar-bound parameter a
// GenerateBlockArraySymbol exposes inside each iteration's block (§4.F).
// It is not one of §3's literally enumerated Symbol subkinds; see Kind.
type ParameterSymbol struct {
	base
	Value definition.ConstantValue
}

// GenerateBlockSymbol.fromSyntax (§4.F): evaluates the if-generate guard as
// a constant; returns the then-branch block when true, the else-branch
// when false and present, or nil when false with no else (scenario 4:
// parent scope gets no new member in that case). The returned block's
// name is its label, or empty for an anonymous block.
type GenerateBlockSymbol struct {
	base
	scope *Scope
}

func (g *GenerateBlockSymbol) Scope() *Scope { return g.scope }

func newGenerateBlock(body GenerateBlockBodySyntax, loc LookupLocation, parent *Scope) *GenerateBlockSymbol {
	g := &GenerateBlockSymbol{
		base: newBase(GenerateBlock, body.Label, body.Loc, parent),
	}
	g.scope = NewScope(g, &loc)
	return g
}

// GenerateBlockFromSyntax elaborates one IfGenerateSyntax. ok is false, with
// a nil block, for the "false guard, no else" case (§8 scenario 4) and when
// the guard cannot be evaluated (no diagnostic is queued in that case);
// callers must not add a nil result to the parent scope.
func GenerateBlockFromSyntax(b Binder, syn IfGenerateSyntax, loc LookupLocation, parent *Scope) (*GenerateBlockSymbol, bool) {
	cond, ok := b.EvalConstant(syn.Cond.Node, loc)
	if !ok {
		return nil, false
	}
	if cond.IsTrue() {
		return newGenerateBlock(syn.ThenBranch, loc, parent), true
	}
	if syn.ElseBranch != nil {
		return newGenerateBlock(*syn.ElseBranch, loc, parent), true
	}
	return nil, false
}

// GenerateBlockArraySymbol.fromSyntax (§4.F): evaluates init/cond/step as
// constant expressions and iterates while cond holds, creating one
// GenerateBlockSymbol child per iteration. Each child exposes an implicit
// ParameterSymbol named after the genvar, bound to that iteration's value.
type GenerateBlockArraySymbol struct {
	base
	scope    *Scope
	Children []*GenerateBlockSymbol
}

func (g *GenerateBlockArraySymbol) Scope() *Scope { return g.scope }

// GenerateBlockArrayFromSyntax elaborates one LoopGenerateSyntax (§8
// scenario 5). Exceeding maxLoopGenerateIterations aborts the array with
// an IterationCapExceeded diagnostic (§7); the array returned still carries
// whatever children were produced before the cap was hit.
func GenerateBlockArrayFromSyntax(b Binder, sink diag.Sink, syn LoopGenerateSyntax, loc LookupLocation, parent *Scope) *GenerateBlockArraySymbol {
	arr := &GenerateBlockArraySymbol{
		base: newBase(GenerateBlockArray, syn.Body.Label, syn.Loc, parent),
	}
	arr.scope = NewScope(arr, &loc)

	// A scratch scope holding just the genvar drives Cond/Step evaluation
	// each iteration; it is never itself exposed to the rest of the tree,
	// only promoted member-by-member into each surviving iteration's own
	// GenerateBlockSymbol scope.
	scratch := NewScope(arr, &loc)
	scratchLoc := LookupLocation{Scope: scratch, Index: 0}

	initVal, ok := b.EvalConstant(syn.Init.Node, loc)
	if !ok {
		sink.AddError(diag.ConstantEvaluationFailed, syn.Loc, "loop-generate initial value could not be evaluated")
		return arr
	}
	genvar := newParameterSymbolAt(syn.GenvarName, scratch, initVal)
	scratch.AddMember(genvar)
	scratchLoc.Index = len(scratch.Members())

	for iter := 0; ; iter++ {
		if iter >= maxLoopGenerateIterations {
			sink.AddError(diag.IterationCapExceeded, syn.Loc,
				"generate loop exceeded the iteration cap of %d", maxLoopGenerateIterations)
			return arr
		}
		cond, ok := b.EvalConstant(syn.Cond.Node, scratchLoc)
		if !ok {
			sink.AddError(diag.ConstantEvaluationFailed, syn.Loc, "loop-generate condition could not be evaluated")
			return arr
		}
		if !cond.IsTrue() {
			return arr
		}

		child := newGenerateBlock(syn.Body, loc, arr.scope)
		childGenvar := newParameterSymbolAt(syn.GenvarName, child.scope, genvar.Value)
		child.scope.AddMember(childGenvar)
		arr.Children = append(arr.Children, child)
		arr.scope.AddMember(child)

		step, ok := b.EvalConstant(syn.Step.Node, scratchLoc)
		if !ok {
			sink.AddError(diag.ConstantEvaluationFailed, syn.Loc, "loop-generate step could not be evaluated")
			return arr
		}
		genvar.Value = step
	}
}

func newParameterSymbolAt(name string, scope *Scope, val definition.ConstantValue) *ParameterSymbol {
	return &ParameterSymbol{
		base:  newBase(Parameter, name, scope.owner.Location(), scope),
		Value: val,
	}
}
