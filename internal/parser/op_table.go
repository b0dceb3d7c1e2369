package parser

import (
	"tcad/internal/ast"
	"tcad/internal/token"
)

// Binary operator precedence, higher binds tighter. `..` is handled
// separately at the expression entry point and never nests.
const (
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precComparison     = 3 // == != < > <= >=
	precAdditive       = 4 // + -
	precMultiplicative = 5 // * / %
	precPower          = 6 // ^ (right-assoc)
)

// binaryPrec returns the precedence and right-associativity of a binary
// operator token, or (-1, false) for non-operators.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.Caret:
		return precPower, true
	default:
		return -1, false
	}
}

func binaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.OrOr:
		return ast.BinOr
	case token.AndAnd:
		return ast.BinAnd
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNe
	case token.Lt:
		return ast.BinLt
	case token.LtEq:
		return ast.BinLe
	case token.Gt:
		return ast.BinGt
	case token.GtEq:
		return ast.BinGe
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.Percent:
		return ast.BinMod
	case token.Caret:
		return ast.BinPow
	default:
		return ast.BinInvalid
	}
}

func unaryOp(kind token.Kind) ast.UnaryOp {
	switch kind {
	case token.Minus:
		return ast.UnNeg
	case token.Bang:
		return ast.UnNot
	case token.Amp:
		return ast.UnRef
	case token.Star:
		return ast.UnDeref
	default:
		return ast.UnInvalid
	}
}
