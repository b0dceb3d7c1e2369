package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwSketch represents the 'sketch' keyword.
	KwSketch // sketch
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit is an integer literal.
	IntLit
	// FloatLit is a floating-point literal.
	FloatLit
	// LengthLit is a number with a length unit suffix (10mm, 3cm, 1m).
	LengthLit
	// AngleLit is a number with an angle unit suffix (45deg, 1.5rad).
	AngleLit
	// StringLit is a double-quoted string (import paths).
	StringLit

	// Operators and punctuation.
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Caret     // ^
	Bang      // !
	Amp       // &
	Assign    // =
	EqEq      // ==
	BangEq    // !=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	AndAnd    // &&
	OrOr      // ||
	Dot       // .
	DotDot    // ..
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Arrow     // ->
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
)

var kindNames = map[Kind]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Ident:     "identifier",
	KwImport:  "import",
	KwStruct:  "struct",
	KwSketch:  "sketch",
	KwFn:      "fn",
	KwLet:     "let",
	KwFor:     "for",
	KwIn:      "in",
	KwWith:    "with",
	KwReturn:  "return",
	KwTrue:    "true",
	KwFalse:   "false",
	IntLit:    "integer literal",
	FloatLit:  "float literal",
	LengthLit: "length literal",
	AngleLit:  "angle literal",
	StringLit: "string literal",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Percent:   "%",
	Caret:     "^",
	Bang:      "!",
	Amp:       "&",
	Assign:    "=",
	EqEq:      "==",
	BangEq:    "!=",
	Lt:        "<",
	LtEq:      "<=",
	Gt:        ">",
	GtEq:      ">=",
	AndAnd:    "&&",
	OrOr:      "||",
	Dot:       ".",
	DotDot:    "..",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	Arrow:     "->",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
