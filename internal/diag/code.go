package diag

import "fmt"

// Code identifies the kind of a Diagnostic, grouped by pipeline stage so the
// numeric ranges line up with the component table in §2.
type Code uint16

const (
	UnknownCode Code = 0

	// Parser base (§4.A-4.C).
	ExpectedToken   Code = 1001
	UnexpectedToken Code = 1002
	SkippedTokens   Code = 1003

	// Symbol/scope model (§4.E).
	DuplicateDeclaration Code = 2001
	UnresolvedName       Code = 2002

	// Elaboration (§4.F-4.G).
	UnresolvedDefinition     Code = 3001
	ConstantEvaluationFailed Code = 3002
	IterationCapExceeded     Code = 3003
	LanguageVersionGate      Code = 3004
	InternalInvariant        Code = 3005
)

var codeTitles = map[Code]string{
	UnknownCode:              "unknown diagnostic",
	ExpectedToken:            "expected token",
	UnexpectedToken:          "unexpected token",
	SkippedTokens:            "skipped unexpected tokens",
	DuplicateDeclaration:     "duplicate declaration",
	UnresolvedName:           "name could not be resolved",
	UnresolvedDefinition:     "unknown module, interface, or program",
	ConstantEvaluationFailed: "constant expression could not be evaluated",
	IterationCapExceeded:     "generate loop exceeded the iteration cap",
	LanguageVersionGate:      "construct requires a later language version",
	InternalInvariant:        "internal invariant violation",
}

// Title returns a short human-readable description of c.
func (c Code) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("E%04d: %s", uint16(c), c.Title())
}
