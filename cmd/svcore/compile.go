package main

import (
	"context"
	"strings"

	"svcore/internal/compilation"
	"svcore/internal/definition"
	"svcore/internal/diag"
	"svcore/internal/langver"
	"svcore/internal/source"
	"svcore/internal/symbols"
)

// declOnlyBinder answers just enough of symbols.Binder to drive the
// declaration-scan front end below: it never evaluates real constants or
// substitutes real parameters, since the concrete SystemVerilog grammar
// behind those operations is out of scope for this repository.
type declOnlyBinder struct{}

func (declOnlyBinder) EvalConstant(expr any, loc symbols.LookupLocation) (definition.ConstantValue, bool) {
	return nil, false
}
func (declOnlyBinder) ResolveOverrides(def *definition.Definition, overrides any, loc symbols.LookupLocation) []definition.ParameterMetadata {
	return nil
}
func (declOnlyBinder) LookupDefinition(name string, scope *symbols.Scope) (*definition.Definition, bool) {
	return nil, false
}
func (declOnlyBinder) SubstituteMember(member symbols.Symbol, params []definition.ParameterMetadata, into *symbols.Scope) symbols.Symbol {
	return member
}

// compileFile drives one file through a minimal declaration-scan front
// end: it treats every non-blank, non-comment line as one top-level
// declaration name, elaborating each into the real symbol/scope stack
// (exercising duplicate-declaration detection and language-version
// gating) without depending on a concrete SystemVerilog lexer/grammar,
// which this repository's core deliberately does not implement.
func compileFile(_ context.Context, path string, content []byte, version langver.Version) ([]*diag.Diagnostic, []string, error) {
	c := compilation.New(compilation.Options{
		Version: version,
		Binder:  declOnlyBinder{},
	})
	unit := c.AddCompilationUnit(source.Span{})

	var names []string
	for lineNo, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		name, requires, ok := parseDeclLine(line)
		if !ok {
			continue
		}
		loc := source.Span{Start: uint32(lineNo), End: uint32(lineNo) + 1}

		if requires != 0 && !version.AtLeast(requires) {
			c.Diagnostics().AddError(diag.LanguageVersionGate, loc,
				"%s requires language version %s or later (compiling against %s)", name, requires, version)
			continue
		}

		parentLoc := symbols.LookupLocation{Scope: unit.Scope(), Index: len(unit.Scope().Members())}
		decl := symbols.PackageFromSyntax(symbols.ModuleDeclarationSyntax{Name: name, Loc: loc}, parentLoc, unit.Scope())
		unit.Scope().AddMemberChecked(decl, c.Diagnostics())
		names = append(names, name)
	}

	c.Elaborate()
	return c.Diagnostics().Items(), names, nil
}

// parseDeclLine recognizes "Name" or "Name requires:1800-2017".
func parseDeclLine(line string) (name string, requires langver.Version, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", 0, false
	}
	name = fields[0]
	for _, f := range fields[1:] {
		if rest, found := strings.CutPrefix(f, "requires:"); found {
			if v, err := langver.Parse(rest); err == nil {
				requires = v
			}
		}
	}
	return name, requires, true
}
