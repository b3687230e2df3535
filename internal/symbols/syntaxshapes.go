package symbols

import "svcore/internal/source"

// The concrete SystemVerilog grammar is out of scope; only the shape of
// the syntax nodes each fromSyntax elaborator consumes is specified (§1).
// These descriptors stand in for that grammar so elaboration can be
// written and tested against a stable shape without a real parser
// production behind every one of them yet.

type MemberSyntax struct {
	Kind Kind
	Node any
}

type ModuleDeclarationSyntax struct {
	Name    string
	Loc     source.Span
	Params  []ParamOverride
	Members []MemberSyntax
}

type ParamOverride struct {
	Name  string
	Named bool
	Expr  ConstExprSyntax
}

type ConstExprSyntax struct {
	Loc  source.Span
	Node any
}

type HierarchicalInstanceSyntax struct {
	InstanceName string
	Loc          source.Span
	Overrides    []ParamOverride
}

type HierarchyInstantiationSyntax struct {
	DefinitionName string
	Loc            source.Span
	Instances      []HierarchicalInstanceSyntax
}

type BlockStatementSyntax struct {
	Label string
	Loc   source.Span
	Body  any
}

type ProceduralBlockSyntax struct {
	Kind ProcedureKind
	Loc  source.Span
	Body any
}

type GenerateBlockBodySyntax struct {
	Label   string
	Loc     source.Span
	Members []MemberSyntax
}

type IfGenerateSyntax struct {
	Loc        source.Span
	Cond       ConstExprSyntax
	ThenBranch GenerateBlockBodySyntax
	ElseBranch *GenerateBlockBodySyntax
}

type LoopGenerateSyntax struct {
	Loc        source.Span
	GenvarName string
	Init       ConstExprSyntax
	Cond       ConstExprSyntax
	Step       ConstExprSyntax
	Body       GenerateBlockBodySyntax
}
