package syntax

import (
	"strings"

	"svcore/internal/arena"
	"svcore/internal/token"
)

// TokenOrSyntax is the tagged union used as the element type of every child
// list and every separated-list buffer (§3): it carries either a Token
// value or a reference to a child Node, never both.
type TokenOrSyntax struct {
	tok     token.Token
	node    arena.ID
	isToken bool
}

// Tok wraps a Token as a child element.
func Tok(t token.Token) TokenOrSyntax {
	return TokenOrSyntax{tok: t, isToken: true}
}

// Child wraps a Node reference as a child element.
func Child(id arena.ID) TokenOrSyntax {
	return TokenOrSyntax{node: id}
}

// IsToken reports whether this element holds a Token rather than a Node.
func (ts TokenOrSyntax) IsToken() bool {
	return ts.isToken
}

// AsToken returns the held Token; callers must check IsToken first.
func (ts TokenOrSyntax) AsToken() token.Token {
	return ts.tok
}

// AsNode returns the held Node reference; callers must check !IsToken first.
func (ts TokenOrSyntax) AsNode() arena.ID {
	return ts.node
}

// Node is the heterogeneous syntax tree node described in §3: a
// discriminator plus an ordered list of child tokens/nodes. Nodes are
// immutable once constructed and owned exclusively by the Tree's arena.
type Node struct {
	Kind     Kind
	Children []TokenOrSyntax
	missing  bool
}

// IsMissing reports whether this node is a synthesized placeholder built by
// NewMissing for an item that was expected but absent (§4.C).
func (n *Node) IsMissing() bool {
	return n.missing
}

// NewMissing builds the placeholder node substituted for an absent required
// item, e.g. the trailing-separator scenario in §8 scenario 2.
func NewMissing(kind Kind) Node {
	return Node{Kind: kind, missing: true}
}

// Tree owns the arena backing every Node allocated while parsing one
// compilation unit. It is never shared across Compilations (§5).
type Tree struct {
	nodes *arena.Arena[Node]
	root  arena.ID
}

// NewTree creates an empty Tree with a capacity hint for its node arena.
func NewTree(capHint int) *Tree {
	return &Tree{nodes: arena.New[Node](capHint)}
}

// Alloc publishes n into the arena and returns its stable ID.
func (t *Tree) Alloc(n Node) arena.ID {
	return t.nodes.Alloc(n)
}

// Get dereferences id.
func (t *Tree) Get(id arena.ID) *Node {
	return t.nodes.Get(id)
}

// SetRoot records the top-level node of this tree (the CompilationUnit).
func (t *Tree) SetRoot(id arena.ID) {
	t.root = id
}

// Root returns the top-level node ID, or the zero ID if none was set.
func (t *Tree) Root() arena.ID {
	return t.root
}

// FirstToken returns the left-most descendant token of the node at id.
// Returns the zero Token if the subtree holds no tokens at all (an empty
// Missing node).
func (t *Tree) FirstToken(id arena.ID) token.Token {
	n := t.Get(id)
	for _, c := range n.Children {
		if c.IsToken() {
			return c.AsToken()
		}
		if tok := t.FirstToken(c.AsNode()); tok.Kind != token.Invalid {
			return tok
		}
	}
	return token.Token{}
}

// PrependTrivia inserts trivia before the existing leading trivia of
// children[0] when that first child is a token (§4.B). It is a no-op if
// trivia or children is empty, or if the first child is a node (no
// recursion into it). Because Nodes are immutable once published, this
// rewrites the token's slot in place inside the still-mutable children
// slice; callers therefore
// call this only on nodes they are still assembling in a scratch buffer,
// before the node is allocated into the arena.
func PrependTrivia(children []TokenOrSyntax, trivia []token.Trivia) []TokenOrSyntax {
	if len(trivia) == 0 || len(children) == 0 {
		return children
	}
	first := children[0]
	if first.IsToken() {
		tok := first.AsToken()
		merged := make([]token.Trivia, 0, len(trivia)+len(tok.Trivia))
		merged = append(merged, trivia...)
		merged = append(merged, tok.Trivia...)
		children[0] = Tok(tok.WithTrivia(merged))
	}
	return children
}

// NewIdentifierName builds a single-token IdentifierName node, applying any
// pending leading trivia before the node is allocated.
func NewIdentifierName(tok token.Token, pendingTrivia []token.Trivia) Node {
	children := PrependTrivia([]TokenOrSyntax{Tok(tok)}, pendingTrivia)
	return Node{Kind: IdentifierName, Children: children}
}

// PrependLeadingTrivia inserts trivia before the existing leading trivia of
// the left-most descendant token of the node at id, mutating that token's
// slot in place (§4.B). This is safe only while the subtree is still being
// assembled by the parser that owns this Tree; once a node is handed to an
// elaborator it must be treated as immutable.
func (t *Tree) PrependLeadingTrivia(id arena.ID, trivia []token.Trivia) {
	if len(trivia) == 0 {
		return
	}
	n := t.Get(id)
	if len(n.Children) == 0 {
		return
	}
	first := n.Children[0]
	if first.IsToken() {
		tok := first.AsToken()
		merged := make([]token.Trivia, 0, len(trivia)+len(tok.Trivia))
		merged = append(merged, trivia...)
		merged = append(merged, tok.Trivia...)
		n.Children[0] = Tok(tok.WithTrivia(merged))
		return
	}
	t.PrependLeadingTrivia(first.AsNode(), trivia)
}

// WriteText appends the exact source text covered by the node at id
// (trivia then token text, recursively) to sb. This is the round-trip
// reconstruction described in §8.
func (t *Tree) WriteText(sb *strings.Builder, id arena.ID) {
	n := t.Get(id)
	for _, c := range n.Children {
		if c.IsToken() {
			writeTokenText(sb, c.AsToken())
			continue
		}
		t.WriteText(sb, c.AsNode())
	}
}

func writeTokenText(sb *strings.Builder, tok token.Token) {
	sb.WriteString(tok.TriviaText())
	sb.WriteString(tok.Text)
}
