package token

// Kind discriminates the lexical category of a Token. The lexer/preprocessor
// that produces these kinds is out of scope for this package; only the shape
// needed by the parser base and the elaborator is modeled here.
type Kind uint16

const (
	// Invalid is the zero value, never produced by a real token source.
	Invalid Kind = iota
	EndOfFile

	Identifier
	SystemIdentifier
	IntLiteral
	StringLiteral

	// Punctuation.
	Comma
	Semicolon
	Colon
	Dot
	Hash
	Equals
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Star
	Plus
	Minus
	Percent
	Less
	Greater
	LessEquals
	GreaterEquals
	EqualsEquals
	PlusPlus
	MinusMinus

	// Keywords relevant to hierarchy/scope/generate elaboration. The full
	// SystemVerilog keyword set belongs to the grammar, which is out of
	// scope; these are the ones the elaborator contracts in §4.F reference.
	KwModule
	KwEndmodule
	KwInterface
	KwEndinterface
	KwProgram
	KwEndprogram
	KwPackage
	KwEndpackage
	KwBegin
	KwEnd
	KwIf
	KwElse
	KwFor
	KwGenvar
	KwGenerate
	KwEndgenerate
	KwInitial
	KwAlways
	KwAlwaysComb
	KwAlwaysLatch
	KwAlwaysFF
	KwFinal
	KwParameter
	KwLocalparam

	Unknown
)

var kindNames = map[Kind]string{
	Invalid:          "invalid",
	EndOfFile:        "EOF",
	Identifier:       "identifier",
	SystemIdentifier: "system-identifier",
	IntLiteral:       "int-literal",
	StringLiteral:    "string-literal",
	Comma:            "','",
	Semicolon:        "';'",
	Colon:            "':'",
	Dot:              "'.'",
	Hash:             "'#'",
	Equals:           "'='",
	LParen:           "'('",
	RParen:           "')'",
	LBrace:           "'{'",
	RBrace:           "'}'",
	LBracket:         "'['",
	RBracket:         "']'",
	Star:             "'*'",
	Plus:             "'+'",
	Minus:            "'-'",
	Percent:          "'%'",
	Less:             "'<'",
	Greater:          "'>'",
	LessEquals:       "'<='",
	GreaterEquals:    "'>='",
	EqualsEquals:     "'=='",
	PlusPlus:         "'++'",
	MinusMinus:       "'--'",
	KwModule:         "'module'",
	KwEndmodule:      "'endmodule'",
	KwInterface:      "'interface'",
	KwEndinterface:   "'endinterface'",
	KwProgram:        "'program'",
	KwEndprogram:     "'endprogram'",
	KwPackage:        "'package'",
	KwEndpackage:     "'endpackage'",
	KwBegin:          "'begin'",
	KwEnd:            "'end'",
	KwIf:             "'if'",
	KwElse:           "'else'",
	KwFor:            "'for'",
	KwGenvar:         "'genvar'",
	KwGenerate:       "'generate'",
	KwEndgenerate:    "'endgenerate'",
	KwInitial:        "'initial'",
	KwAlways:         "'always'",
	KwAlwaysComb:     "'always_comb'",
	KwAlwaysLatch:    "'always_latch'",
	KwAlwaysFF:       "'always_ff'",
	KwFinal:          "'final'",
	KwParameter:      "'parameter'",
	KwLocalparam:     "'localparam'",
	Unknown:          "unknown",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "?"
}
