package token

import "svcore/internal/source"

// Token is a value-semantics lexeme: cheap to copy and move, but its Trivia
// slice points into storage owned by the compilation's scratch pools or
// arena (see internal/arena). The lexer/preprocessor that produces Tokens is
// out of scope; this package only models the shape the parser base and
// elaborator depend on.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Trivia  []Trivia
	missing bool
}

// IsMissing reports whether t is a synthetic placeholder produced by
// parser.Base.Expect on a mismatch, rather than something read from source.
func (t Token) IsMissing() bool {
	return t.missing
}

// Is reports whether t has the given kind.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// WithTrivia returns a copy of t with its leading trivia replaced. Used by
// the prepend* family in internal/parser to re-home skipped material onto
// the closest surviving token without mutating the original.
func (t Token) WithTrivia(trivia []Trivia) Token {
	t.Trivia = trivia
	return t
}

// Missing constructs the synthetic placeholder token returned by Expect on a
// mismatch: empty text, the requested kind, flagged missing, and carrying
// the leading trivia of the token that was actually found (so that trivia
// is never silently dropped on the error path).
func Missing(kind Kind, at source.Span, trivia []Trivia) Token {
	return Token{
		Kind:    kind,
		Span:    source.Span{File: at.File, Start: at.Start, End: at.Start},
		Text:    "",
		Trivia:  trivia,
		missing: true,
	}
}

// EOF constructs a canonical end-of-file token at the given location,
// carrying no text and no trivia of its own.
func EOF(at source.Span) Token {
	return Token{Kind: EndOfFile, Span: at}
}

// TriviaText returns the concatenated text of every leading trivium,
// recursing into SkippedTokens trivia. Used by round-trip reconstruction.
func (t Token) TriviaText() string {
	var out []byte
	for _, tv := range t.Trivia {
		out = appendTriviaText(out, tv)
	}
	return string(out)
}

func appendTriviaText(out []byte, tv Trivia) []byte {
	if tv.IsSkippedTokens() {
		for _, skipped := range tv.Skipped {
			out = append(out, skipped.TriviaText()...)
			out = append(out, skipped.Text...)
		}
		return out
	}
	return append(out, tv.Text...)
}

// Source is the external token source contract (§6): a forward-only cursor
// yielding the next token, with trivia already attached. End-of-file is
// signaled by a token of kind EndOfFile; callers may call Next repeatedly
// past EOF and must keep receiving the same EOF token.
type Source interface {
	Next() Token
}
