package symbols

import (
	"testing"

	"svcore/internal/definition"
	"svcore/internal/source"
)

// missingDefBinder reports every definition lookup as unresolved.
type missingDefBinder struct {
	fakeBinder
}

func (*missingDefBinder) LookupDefinition(name string, scope *Scope) (*definition.Definition, bool) {
	return nil, false
}

// cloningBinder substitutes members by building a fresh symbol per call, so
// instance scopes never share member identities.
type cloningBinder struct {
	fakeBinder
}

func (*cloningBinder) SubstituteMember(member Symbol, params []definition.ParameterMetadata, into *Scope) Symbol {
	return newFakeSymbol(member.Name(), member.Location().Start, into)
}

func TestInstanceSymbolFromSyntax_OnePerInstanceName(t *testing.T) {
	root := NewScope(nil, nil)
	b := &fakeBinder{}

	syn := HierarchyInstantiationSyntax{
		DefinitionName: "M",
		Loc:            source.Span{File: 1, Start: 0, End: 20},
		Instances: []HierarchicalInstanceSyntax{
			{InstanceName: "m0", Loc: source.Span{File: 1, Start: 2, End: 4}},
			{InstanceName: "m1", Loc: source.Span{File: 1, Start: 6, End: 8}},
		},
	}

	var out []*InstanceSymbol
	if ok := InstanceSymbolFromSyntax(b, syn, testLoc(root), root, &out); !ok {
		t.Fatalf("expected the definition to resolve")
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want one instance per instance name", len(out))
	}
	for i, want := range []string{"m0", "m1"} {
		if out[i].Name() != want {
			t.Fatalf("out[%d].Name() = %q, want %q (source order)", i, out[i].Name(), want)
		}
		if !out[i].IsKind(ModuleInstance) {
			t.Fatalf("out[%d] kind = %v, want ModuleInstance", i, out[i].Kind())
		}
		if out[i].Definition().Name != "M" {
			t.Fatalf("out[%d] should back onto definition %q", i, "M")
		}
	}
}

func TestInstanceSymbolFromSyntax_UnresolvedDefinition(t *testing.T) {
	root := NewScope(nil, nil)
	syn := HierarchyInstantiationSyntax{
		DefinitionName: "Nope",
		Instances:      []HierarchicalInstanceSyntax{{InstanceName: "n0"}},
	}

	var out []*InstanceSymbol
	if ok := InstanceSymbolFromSyntax(&missingDefBinder{}, syn, testLoc(root), root, &out); ok {
		t.Fatalf("expected ok == false for an unknown definition")
	}
	if len(out) != 0 {
		t.Fatalf("outResults must stay untouched on failure, got %d entries", len(out))
	}
}

// §4.F InstanceSymbol.populate: symbol identities within one instance are
// disjoint from those in any other instance of the same Definition.
func TestAddSubstitutedMember_DisjointAcrossInstances(t *testing.T) {
	root := NewScope(nil, nil)
	b := &cloningBinder{}

	syn := HierarchyInstantiationSyntax{
		DefinitionName: "M",
		Instances: []HierarchicalInstanceSyntax{
			{InstanceName: "m0"},
			{InstanceName: "m1"},
		},
	}
	var out []*InstanceSymbol
	if ok := InstanceSymbolFromSyntax(b, syn, testLoc(root), root, &out); !ok {
		t.Fatalf("expected the definition to resolve")
	}

	bodyMember := newFakeSymbol("w", 3, nil)
	first := out[0].AddSubstitutedMember(b, bodyMember)
	second := out[1].AddSubstitutedMember(b, bodyMember)

	if first == second {
		t.Fatalf("sibling instances must not share substituted member identities")
	}
	if out[0].Scope().Find("w") != first || out[1].Scope().Find("w") != second {
		t.Fatalf("each instance scope should hold its own substituted member")
	}
}
