package parser

import (
	"strings"
	"testing"

	"svcore/internal/diag"
	"svcore/internal/syntax"
	"svcore/internal/token"
)

func newTestBase(input string) (*Base, *diag.Bag) {
	bag := diag.NewBag(0)
	tree := syntax.NewTree(16)
	base := NewBase(&sliceSource{toks: lex(input)}, tree, bag)
	return base, bag
}

func isIdentKind(k token.Kind) bool { return k == token.Identifier }
func isRParenKind(k token.Kind) bool { return k == token.RParen }

func parseIdentifierItem(p *Base) ParseItemFunc {
	return func(isFirst bool) syntax.TokenOrSyntax {
		tok := p.Expect(token.Identifier)
		id := p.Tree.Alloc(syntax.NewIdentifierName(tok, nil))
		return syntax.Child(id)
	}
}

func elemText(tree *syntax.Tree, ts syntax.TokenOrSyntax) string {
	var sb strings.Builder
	if ts.IsToken() {
		sb.WriteString(ts.AsToken().TriviaText())
		sb.WriteString(ts.AsToken().Text)
		return sb.String()
	}
	tree.WriteText(&sb, ts.AsNode())
	return sb.String()
}

// Scenario 1 (§8): "()" yields open/close with no elements and zero
// diagnostics.
func TestParseSeparatedList_Empty(t *testing.T) {
	p, bag := newTestBase("()")
	open, list, close := p.ParseSeparatedList(
		token.LParen, token.RParen, token.Comma,
		isIdentKind, isRParenKind,
		diag.SkippedTokens, "expected identifier",
		parseIdentifierItem(p),
	)
	if open.IsMissing() || close.IsMissing() {
		t.Fatalf("open/close should not be missing for a well-formed empty list")
	}
	if list.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", list.Count())
	}
	if bag.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %d", bag.Len())
	}
}

// Scenario 2 (§8): "(a,)" yields elements [a, sep, <missing>] and exactly
// one "expected identifier" diagnostic.
func TestParseSeparatedList_TrailingSeparator(t *testing.T) {
	p, bag := newTestBase("(a,)")
	_, list, close := p.ParseSeparatedList(
		token.LParen, token.RParen, token.Comma,
		isIdentKind, isRParenKind,
		diag.SkippedTokens, "expected identifier",
		parseIdentifierItem(p),
	)
	if list.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 (one real item, one missing item)", list.Count())
	}
	if elemText(p.Tree, list.Item(0)) != "a" {
		t.Fatalf("first item = %q, want %q", elemText(p.Tree, list.Item(0)), "a")
	}
	missingTok := p.Tree.Get(list.Item(1).AsNode()).Children[0].AsToken()
	if !missingTok.IsMissing() {
		t.Fatalf("second item should be a missing identifier")
	}
	if close.IsMissing() {
		t.Fatalf("close paren should have been found")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
}

// A run of garbage between two items with no separator recovers by
// skipping the garbage (one diagnostic) and then synthesizing the missing
// separator (a second, distinct diagnostic) rather than discarding "b".
func TestParseSeparatedList_SkipsGarbageBetweenItems(t *testing.T) {
	p, bag := newTestBase("(a % b)")
	_, list, close := p.ParseSeparatedList(
		token.LParen, token.RParen, token.Comma,
		isIdentKind, isRParenKind,
		diag.SkippedTokens, "unexpected token",
		parseIdentifierItem(p),
	)
	if list.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", list.Count())
	}
	if elemText(p.Tree, list.Item(0)) != "a" {
		t.Fatalf("first item = %q, want %q", elemText(p.Tree, list.Item(0)), "a")
	}
	if got := elemText(p.Tree, list.Item(1)); !strings.HasSuffix(got, "b") {
		t.Fatalf("second item text = %q, want it to end in %q", got, "b")
	}
	sep, ok := list.Separator(0)
	if !ok {
		t.Fatalf("expected a synthesized separator between the items")
	}
	if !strings.Contains(sep.AsToken().TriviaText(), "%") {
		t.Fatalf("skipped '%%' should have been re-homed onto the separator's trivia, got %q", sep.AsToken().TriviaText())
	}
	if close.IsMissing() {
		t.Fatalf("close paren should have been found")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics (one skip, one missing separator), got %d", bag.Len())
	}
}

// Scenario 3 (§8): "(a, %, b)" recovers to [a, sep, b] — the garbage run is
// re-homed as a SkippedTokens trivium on the closest surviving element —
// with exactly one diagnostic, raised at the '%'.
func TestParseSeparatedList_GarbageAfterSeparator(t *testing.T) {
	p, bag := newTestBase("(a, %, b)")
	_, list, close := p.ParseSeparatedList(
		token.LParen, token.RParen, token.Comma,
		isIdentKind, isRParenKind,
		diag.SkippedTokens, "unexpected token",
		parseIdentifierItem(p),
	)
	if list.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", list.Count())
	}
	if elemText(p.Tree, list.Item(0)) != "a" {
		t.Fatalf("first item = %q, want %q", elemText(p.Tree, list.Item(0)), "a")
	}
	sep, ok := list.Separator(0)
	if !ok || sep.AsToken().IsMissing() {
		t.Fatalf("the real separator should survive, got %+v", sep)
	}
	second := p.Tree.Get(list.Item(1).AsNode()).Children[0].AsToken()
	if second.IsMissing() {
		t.Fatalf("no phantom missing item should be synthesized for skippable garbage")
	}
	if got := elemText(p.Tree, list.Item(1)); !strings.Contains(got, "%") || !strings.HasSuffix(got, "b") {
		t.Fatalf("skipped '%%' should be re-homed onto the next item, got %q", got)
	}
	if close.IsMissing() {
		t.Fatalf("close paren should have been found")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	if at := bag.Items()[0].Primary.Start; at != 4 {
		t.Fatalf("diagnostic should sit at the '%%' (offset 4), got %d", at)
	}
}

// Round-trip (§8): concatenating every token's trivia then text reproduces
// the original source exactly, even across the recovery paths.
func TestParseSeparatedList_RoundTrip(t *testing.T) {
	for _, input := range []string{"(a % b)", "(a, %, b)", "(a,)"} {
		p, _ := newTestBase(input)
		open, list, close := p.ParseSeparatedList(
			token.LParen, token.RParen, token.Comma,
			isIdentKind, isRParenKind,
			diag.SkippedTokens, "unexpected token",
			parseIdentifierItem(p),
		)

		var sb strings.Builder
		sb.WriteString(open.TriviaText())
		sb.WriteString(open.Text)
		for _, e := range list.Elems {
			sb.WriteString(elemText(p.Tree, e))
		}
		sb.WriteString(close.TriviaText())
		sb.WriteString(close.Text)

		if sb.String() != input {
			t.Fatalf("round trip of %q = %q", input, sb.String())
		}
	}
}

func TestExpect_MissingCarriesActualTrivia(t *testing.T) {
	p, bag := newTestBase("  )")
	tok := p.Expect(token.Identifier)
	if !tok.IsMissing() {
		t.Fatalf("expected a missing token")
	}
	if tok.TriviaText() != "  " {
		t.Fatalf("missing token trivia = %q, want %q", tok.TriviaText(), "  ")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	// The actual token is still there, now without the leading whitespace
	// it donated to the missing token, so no byte is ever duplicated.
	next := p.Win.Consume()
	if next.Kind != token.RParen || next.TriviaText() != "" {
		t.Fatalf("unexpected next token %v with trivia %q", next.Kind, next.TriviaText())
	}
}
