package types

import "tcad/internal/ast"

// The dimensional algebra is a finite lookup table over
// (operator, left kind, right kind). Everything off the table is an invalid
// operation unless an operand is Unknown or Error; those propagate silently
// so one root cause never fans out into secondary errors.

type arithKey struct {
	op   ast.BinaryOp
	l, r Kind
}

var arithTable = map[arithKey]Kind{}

func init() {
	put := func(op ast.BinaryOp, l, r, result Kind) {
		arithTable[arithKey{op, l, r}] = result
	}
	same := func(op ast.BinaryOp, k Kind) { put(op, k, k, k) }

	for _, op := range []ast.BinaryOp{ast.BinAdd, ast.BinSub} {
		same(op, KindLength)
		same(op, KindAngle)
		same(op, KindArea)
		same(op, KindI32)
		same(op, KindF64)
		same(op, KindReal)
	}

	put(ast.BinMul, KindLength, KindLength, KindArea)
	put(ast.BinMul, KindLength, KindF64, KindLength)
	put(ast.BinMul, KindF64, KindLength, KindLength)
	same(ast.BinMul, KindI32)
	same(ast.BinMul, KindF64)
	same(ast.BinMul, KindReal)

	put(ast.BinDiv, KindLength, KindLength, KindF64)
	put(ast.BinDiv, KindLength, KindF64, KindLength)
	put(ast.BinDiv, KindArea, KindLength, KindLength)
	same(ast.BinDiv, KindI32)
	same(ast.BinDiv, KindF64)
	same(ast.BinDiv, KindReal)

	same(ast.BinMod, KindI32)

	same(ast.BinPow, KindF64)
	same(ast.BinPow, KindReal)
}

// ArithResult resolves an arithmetic operator against the algebra table.
// ok is false only for a genuine off-table combination; Unknown/Error
// operands yield (Unknown/Error, true) and must stay silent.
func (in *Interner) ArithResult(op ast.BinaryOp, left, right TypeID) (TypeID, bool) {
	lk, rk := in.Kind(left), in.Kind(right)
	if lk == KindUnknown || rk == KindUnknown {
		return in.builtins.Unknown, true
	}
	if lk == KindError || rk == KindError {
		return in.builtins.Error, true
	}
	result, ok := arithTable[arithKey{op, lk, rk}]
	if !ok {
		return NoTypeID, false
	}
	return in.Intern(Type{Kind: result}), true
}

// Compatible is the single authoritative gate for every type check: true
// iff either side is Unknown or Error, else structural equality. TypeIDs
// are structurally interned, so equality of IDs is equality of types.
func (in *Interner) Compatible(a, b TypeID) bool {
	ak, bk := in.Kind(a), in.Kind(b)
	if ak == KindUnknown || bk == KindUnknown {
		return true
	}
	if ak == KindError || bk == KindError {
		return true
	}
	return a == b
}

// Suppressed reports whether id must never trigger a new diagnostic.
func (in *Interner) Suppressed(id TypeID) bool {
	k := in.Kind(id)
	return k == KindUnknown || k == KindError
}

// NegResult types unary minus: numeric-preserving.
func (in *Interner) NegResult(operand TypeID) (TypeID, bool) {
	k := in.Kind(operand)
	if k == KindUnknown || k == KindError {
		return operand, true
	}
	if !k.IsNumeric() {
		return NoTypeID, false
	}
	return operand, true
}

// RefResult types `&x`: entity types only.
func (in *Interner) RefResult(operand TypeID) (TypeID, bool) {
	k := in.Kind(operand)
	if k == KindUnknown || k == KindError {
		return operand, true
	}
	if !k.IsEntity() {
		return NoTypeID, false
	}
	return in.Intern(MakeReference(operand)), true
}

// DerefResult types `*x`: Reference(T) to T.
func (in *Interner) DerefResult(operand TypeID) (TypeID, bool) {
	t, ok := in.Lookup(operand)
	if !ok {
		return NoTypeID, false
	}
	switch t.Kind {
	case KindUnknown, KindError:
		return operand, true
	case KindReference:
		return t.Elem, true
	default:
		return NoTypeID, false
	}
}
