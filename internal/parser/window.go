// Package parser implements the parser base described in §4.A-§4.D: a
// sliding token window, trivia propagation, and the generic error-recovery
// primitives every grammar production is built from. The concrete grammar
// is out of scope (§1); this package only provides the substrate.
package parser

import "svcore/internal/token"

const windowStartCap = 32

// Window provides O(1) lookahead of any small offset over a forward-only
// token.Source (§4.A). Tokens already read from the source but not yet
// consumed are buffered; the buffer is compacted periodically so it never
// grows without bound for a long parse.
type Window struct {
	src          token.Source
	buf          []token.Token
	head         int
	lastConsumed token.Token
}

// NewWindow creates a Window over src with the starting buffer capacity
// described in §4.A.
func NewWindow(src token.Source) *Window {
	return &Window{src: src, buf: make([]token.Token, 0, windowStartCap)}
}

func (w *Window) fill(offset int) {
	for len(w.buf) <= w.head+offset {
		w.buf = append(w.buf, w.src.Next())
	}
}

// Peek returns the current token without consuming it.
func (w *Window) Peek() token.Token {
	return w.PeekAt(0)
}

// PeekAt returns the token offset positions ahead of the current one.
func (w *Window) PeekAt(offset int) token.Token {
	w.fill(offset)
	return w.buf[w.head+offset]
}

// PeekIs reports whether the current token has the given kind.
func (w *Window) PeekIs(kind token.Kind) bool {
	return w.Peek().Kind == kind
}

// Consume returns the current token and advances past it.
func (w *Window) Consume() token.Token {
	t := w.Peek()
	w.head++
	w.lastConsumed = t
	w.compact()
	return t
}

// ConsumeIf consumes and returns the current token if it matches kind,
// otherwise it returns the zero/invalid token sentinel without advancing.
func (w *Window) ConsumeIf(kind token.Kind) token.Token {
	if w.PeekIs(kind) {
		return w.Consume()
	}
	return token.Token{}
}

// LastConsumed returns the most recently consumed token, or the zero
// sentinel if nothing has been consumed yet.
func (w *Window) LastConsumed() token.Token {
	return w.lastConsumed
}

// TakeLeadingTrivia detaches and returns the current token's leading
// trivia, clearing it in the buffer. Expect uses this so that a missing
// token can carry the mismatched token's trivia without the original token
// contributing that trivia a second time once it is eventually consumed —
// preserving the round-trip invariant of §8 on the error path.
func (w *Window) TakeLeadingTrivia() []token.Trivia {
	w.fill(0)
	trivia := w.buf[w.head].Trivia
	w.buf[w.head].Trivia = nil
	return trivia
}

func (w *Window) compact() {
	switch {
	case w.head == len(w.buf):
		w.buf = w.buf[:0]
		w.head = 0
	case w.head >= windowStartCap*2:
		copy(w.buf, w.buf[w.head:])
		w.buf = w.buf[:len(w.buf)-w.head]
		w.head = 0
	}
}
