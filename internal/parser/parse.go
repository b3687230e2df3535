package parser

import (
	"svcore/internal/arena"
	"svcore/internal/syntax"
	"svcore/internal/token"
)

// ParseCompilationUnit consumes every remaining token in the window, up to
// and including EndOfFile, and publishes them as the children of a single
// CompilationUnit node, recorded as the tree's root. The concrete grammar
// for individual SystemVerilog productions is out of scope here; recognizers
// that embed Base refine the token run into real declaration nodes, but the
// top-level "parse an input stream into a syntax tree" operation and its
// round-trip guarantee hold without them. The EOF token is kept as the last
// child so trailing trivia survives reconstruction.
func (p *Base) ParseCompilationUnit() arena.ID {
	elems := p.elemPool.Get()
	for {
		tok := p.Win.Consume()
		elems = append(elems, syntax.Tok(tok))
		if tok.Kind == token.EndOfFile {
			break
		}
	}
	id := p.Tree.Alloc(syntax.Node{
		Kind:     syntax.CompilationUnit,
		Children: arena.Published(p.elemPool, elems),
	})
	p.Tree.SetRoot(id)
	return id
}
