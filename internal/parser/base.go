package parser

import (
	"svcore/internal/arena"
	"svcore/internal/diag"
	"svcore/internal/syntax"
	"svcore/internal/token"
)

// Base is embedded by every concrete grammar-production parser. It owns the
// token window, the syntax arena, and the scratch pools described in §4.D,
// and implements the error-recovery primitives of §4.C. Concrete recognizers
// (out of scope here) are expected to embed Base and add production methods.
type Base struct {
	Win   *Window
	Tree  *syntax.Tree
	Diags diag.Sink

	tokenPool *arena.Pool[token.Token]
	elemPool  *arena.Pool[syntax.TokenOrSyntax]
}

// NewBase wires a Window over src to tree and diags.
func NewBase(src token.Source, tree *syntax.Tree, diags diag.Sink) *Base {
	return &Base{
		Win:       NewWindow(src),
		Tree:      tree,
		Diags:     diags,
		tokenPool: arena.NewPool[token.Token](),
		elemPool:  arena.NewPool[syntax.TokenOrSyntax](),
	}
}

// Expect consumes a token of the given kind. On a mismatch it emits an
// "expected X" diagnostic at the current location and returns a missing
// token carrying the mismatched token's leading trivia (§4.A); the
// mismatched token itself is left in the window, stripped of that trivia,
// for the caller's recovery path to deal with.
func (p *Base) Expect(kind token.Kind) token.Token {
	if p.Win.PeekIs(kind) {
		return p.Win.Consume()
	}
	actual := p.Win.Peek()
	trivia := p.Win.TakeLeadingTrivia()
	p.Diags.AddError(diag.ExpectedToken, actual.Span, "expected %s", kind)
	return token.Missing(kind, actual.Span, trivia)
}

// SkipResult is the outcome of SkipBadTokens (§4.C).
type SkipResult uint8

const (
	Continue SkipResult = iota
	Abort
)

// Predicate classifies a token.Kind, e.g. "can begin a list item" or "is
// disruptive enough to abort recovery". Per §9's note on compile-time
// polymorphism these are ordinary Go function values rather than a virtual
// dispatch interface — callers typically pass package-level functions
// specialized per grammar production.
type Predicate func(token.Kind) bool

// SkipBadTokens consumes tokens until isExpected matches (Continue) or
// isAbort matches or EOF is reached (Abort), raising diagCode exactly once
// at the first bad token's location. The skipped run is returned as a
// single SkippedTokens trivium (nil if nothing was skipped).
func (p *Base) SkipBadTokens(isExpected, isAbort Predicate, diagCode diag.Code, message string) ([]token.Trivia, SkipResult) {
	if isExpected(p.Win.Peek().Kind) {
		return nil, Continue
	}

	first := p.Win.Peek()
	p.Diags.AddError(diagCode, first.Span, message)

	toks := p.tokenPool.Get()
	for {
		k := p.Win.Peek().Kind
		if isExpected(k) {
			return packSkipped(arena.Published(p.tokenPool, toks)), Continue
		}
		if k == token.EndOfFile || isAbort(k) {
			return packSkipped(arena.Published(p.tokenPool, toks)), Abort
		}
		toks = append(toks, p.Win.Consume())
	}
}

func packSkipped(toks []token.Token) []token.Trivia {
	if len(toks) == 0 {
		return nil
	}
	return []token.Trivia{{Kind: token.TriviaSkippedTokens, Skipped: toks}}
}

// PrependToToken attaches trivia before tok's existing leading trivia. It
// is the Token overload of prependTrivia (§4.B); a no-op for empty trivia.
func PrependToToken(tok token.Token, trivia []token.Trivia) token.Token {
	if len(trivia) == 0 {
		return tok
	}
	merged := make([]token.Trivia, 0, len(trivia)+len(tok.Trivia))
	merged = append(merged, trivia...)
	merged = append(merged, tok.Trivia...)
	return tok.WithTrivia(merged)
}

// PrependSkippedTokens packages toks into a single SkippedTokens trivium
// and prepends it to tok's leading trivia (§4.B). No-op for an empty run.
func PrependSkippedTokens(tok token.Token, toks []token.Token) token.Token {
	return PrependToToken(tok, packSkipped(toks))
}

// attachLeading is the TokenOrSyntax overload of prependTrivia (§4.B): it
// prepends trivia onto the left-most descendant token of elem, whichever
// kind elem is.
func attachLeading(tree *syntax.Tree, elem syntax.TokenOrSyntax, trivia []token.Trivia) syntax.TokenOrSyntax {
	if len(trivia) == 0 {
		return elem
	}
	if elem.IsToken() {
		return syntax.Tok(PrependToToken(elem.AsToken(), trivia))
	}
	tree.PrependLeadingTrivia(elem.AsNode(), trivia)
	return elem
}

// ParseItemFunc parses one element of a separated list; isFirst is true
// only for the first item. Implementations must themselves tolerate and
// recover from a current token that cannot begin an item (e.g. by calling
// Expect and synthesizing a missing node), since ParseSeparatedList always
// invokes it once an item is expected to start.
type ParseItemFunc func(isFirst bool) syntax.TokenOrSyntax

// ParseSeparatedList is the generic recognizer reused by every SystemVerilog
// list of the shape `open item (sep item)* close` (§4.C). isExpected
// classifies tokens that can begin an item; isEnd classifies tokens that
// terminate the list (typically closeKind, possibly along with other hard
// stops). Skipped material is re-homed as leading trivia on the closest
// surviving item/separator/close token, so no source byte is ever dropped.
func (p *Base) ParseSeparatedList(
	openKind, closeKind, sepKind token.Kind,
	isExpected, isEnd Predicate,
	skipDiagCode diag.Code, skipMessage string,
	parseItem ParseItemFunc,
) (open token.Token, list syntax.SeparatedList, close token.Token) {
	open = p.Expect(openKind)

	elems := p.elemPool.Get()
	var pending []token.Trivia

	takePending := func() []token.Trivia {
		t := pending
		pending = nil
		return t
	}

	if !isEnd(p.Win.Peek().Kind) {
	outer:
		for {
			k := p.Win.Peek().Kind
			switch {
			case isEnd(k):
				break outer
			case isExpected(k):
				item := parseItem(len(elems) == 0)
				item = attachLeading(p.Tree, item, takePending())
				elems = append(elems, item)

				for {
					k2 := p.Win.Peek().Kind
					if isEnd(k2) {
						break outer
					}
					if k2 != sepKind && !isExpected(k2) {
						skipped, res := p.SkipBadTokens(isExpected, isEnd, skipDiagCode, skipMessage)
						pending = append(pending, skipped...)
						if res == Abort {
							break outer
						}
						continue
					}

					// Expect consumes a real separator, or synthesizes a
					// missing one when two items sit back to back.
					sep := attachLeading(p.Tree, syntax.Tok(p.Expect(sepKind)), takePending())
					elems = append(elems, sep)

					// Garbage between the separator and the next item is
					// skipped and re-homed as pending trivia here, so the
					// item is synthesized missing only when the list truly
					// ends right after the separator.
					if k3 := p.Win.Peek().Kind; k3 != sepKind && !isExpected(k3) && !isEnd(k3) {
						skipped, res := p.SkipBadTokens(isExpected, isEnd, skipDiagCode, skipMessage)
						pending = append(pending, skipped...)
						if res == Abort {
							break outer
						}
					}
					next := parseItem(false)
					next = attachLeading(p.Tree, next, takePending())
					elems = append(elems, next)
				}
			default:
				skipped, res := p.SkipBadTokens(isExpected, isEnd, skipDiagCode, skipMessage)
				pending = append(pending, skipped...)
				if res == Abort {
					break outer
				}
			}
		}
	}

	close = p.Expect(closeKind)
	close = PrependToToken(close, takePending())

	published := arena.Published(p.elemPool, elems)
	return open, syntax.SeparatedList{Elems: published}, close
}
