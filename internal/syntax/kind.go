package syntax

// Kind discriminates a SyntaxNode. Only the productions the hierarchy/scope
// model in §4.F needs to elaborate are named here; the concrete grammar for
// every SystemVerilog production is out of scope (§1).
type Kind uint16

const (
	Unknown Kind = iota

	// Missing marks a placeholder node for an item that was expected but
	// absent (§4.C, scenario 2). parseSeparatedList does not build it itself;
	// that is left to its parseItem callback.
	Missing

	CompilationUnit
	ModuleDeclaration
	InterfaceDeclaration
	ProgramDeclaration
	PackageDeclaration

	HierarchyInstantiation
	HierarchicalInstance
	ParameterValueAssignment
	ParamAssignment
	OrderedParamAssignment
	NamedParamAssignment

	ParameterDeclaration
	ParameterDeclarator

	BlockStatement
	ProceduralBlock

	IfGenerate
	LoopGenerate
	GenerateBlock

	IdentifierName
)
