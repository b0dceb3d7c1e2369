package ast

// BinaryOp is a flat operator enum; precedence lives in the parser's op table.
type BinaryOp uint8

const (
	BinInvalid BinaryOp = iota
	BinOr               // ||
	BinAnd              // &&
	BinEq               // ==
	BinNe               // !=
	BinLt               // <
	BinGt               // >
	BinLe               // <=
	BinGe               // >=
	BinAdd              // +
	BinSub              // -
	BinMul              // *
	BinDiv              // /
	BinMod              // %
	BinPow              // ^
)

var binaryNames = [...]string{
	BinInvalid: "?",
	BinOr:      "||",
	BinAnd:     "&&",
	BinEq:      "==",
	BinNe:      "!=",
	BinLt:      "<",
	BinGt:      ">",
	BinLe:      "<=",
	BinGe:      ">=",
	BinAdd:     "+",
	BinSub:     "-",
	BinMul:     "*",
	BinDiv:     "/",
	BinMod:     "%",
	BinPow:     "^",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "?"
}

// IsComparison reports whether op yields Bool from its operands.
func (op BinaryOp) IsComparison() bool {
	return op >= BinEq && op <= BinGe
}

// IsLogical reports whether op is a Bool connective.
func (op BinaryOp) IsLogical() bool {
	return op == BinOr || op == BinAnd
}

type UnaryOp uint8

const (
	UnInvalid UnaryOp = iota
	UnNeg             // -
	UnNot             // !
	UnRef             // &
	UnDeref           // *
)

var unaryNames = [...]string{
	UnInvalid: "?",
	UnNeg:     "-",
	UnNot:     "!",
	UnRef:     "&",
	UnDeref:   "*",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return "?"
}
