package parser

import (
	"svcore/internal/source"
	"svcore/internal/token"
)

// sliceSource is a minimal, test-only token.Source: the concrete lexer is
// out of scope (§1), so tests drive the window/list recognizers over a
// pre-tokenized slice instead of a real scanner.
type sliceSource struct {
	toks []token.Token
	pos  int
}

func (s *sliceSource) Next() token.Token {
	if s.pos >= len(s.toks) {
		return s.toks[len(s.toks)-1]
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

// lex tokenizes a tiny test language: identifiers (letters/digits), '(' ')'
// ',' and everything else as Unknown, with runs of spaces folded into
// leading whitespace trivia on the following token. It exists only to
// exercise the parser base in tests.
func lex(input string) []token.Token {
	var toks []token.Token
	i := 0
	var pendingTrivia []token.Trivia

	flushWhitespace := func(start, end int) {
		if end > start {
			pendingTrivia = append(pendingTrivia, token.Trivia{
				Kind: token.TriviaWhitespace,
				Span: span(start, end),
				Text: input[start:end],
			})
		}
	}

	for i < len(input) {
		start := i
		switch c := input[i]; {
		case c == ' ' || c == '\t' || c == '\n':
			for i < len(input) && (input[i] == ' ' || input[i] == '\t' || input[i] == '\n') {
				i++
			}
			flushWhitespace(start, i)
		case c == '(':
			toks = append(toks, mk(token.LParen, start, i+1, "(", pendingTrivia))
			pendingTrivia = nil
			i++
		case c == ')':
			toks = append(toks, mk(token.RParen, start, i+1, ")", pendingTrivia))
			pendingTrivia = nil
			i++
		case c == ',':
			toks = append(toks, mk(token.Comma, start, i+1, ",", pendingTrivia))
			pendingTrivia = nil
			i++
		case isIdentChar(c):
			for i < len(input) && isIdentChar(input[i]) {
				i++
			}
			toks = append(toks, mk(token.Identifier, start, i, input[start:i], pendingTrivia))
			pendingTrivia = nil
		default:
			i++
			toks = append(toks, mk(token.Unknown, start, i, input[start:i], pendingTrivia))
			pendingTrivia = nil
		}
	}
	eof := mk(token.EndOfFile, len(input), len(input), "", pendingTrivia)
	toks = append(toks, eof)
	return toks
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func span(start, end int) source.Span {
	return source.Span{File: 0, Start: uint32(start), End: uint32(end)}
}

func mk(kind token.Kind, start, end int, text string, trivia []token.Trivia) token.Token {
	return token.Token{Kind: kind, Span: span(start, end), Text: text, Trivia: trivia}
}
