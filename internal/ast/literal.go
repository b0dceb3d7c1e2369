package ast

import "strconv"

type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitFloat
	LitBool
	LitLength // value + unit (mm, cm, m)
	LitAngle  // value + unit (deg, rad)
)

// Literal holds the payload of a literal expression. Only the fields for the
// active Kind are meaningful. Units are tagged, never converted.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Bool  bool
	Unit  string
}

func (l Literal) String() string {
	switch l.Kind {
	case LitInt:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LitBool:
		return strconv.FormatBool(l.Bool)
	case LitLength, LitAngle:
		return strconv.FormatFloat(l.Float, 'g', -1, 64) + l.Unit
	default:
		return "?"
	}
}
