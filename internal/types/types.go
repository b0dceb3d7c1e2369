package types

import (
	"fmt"
	"strconv"
)

// Kind classifies a type descriptor.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Geometric entities.
	KindPoint
	KindLength
	KindAngle
	KindArea

	// Scalars.
	KindBool
	KindI32
	KindF64
	KindReal

	// Symbolic value produced by constraint expressions.
	KindAlgebraic

	// Projection target of a with-block.
	KindView

	KindArray
	KindStruct
	KindFunction
	KindReference

	// KindUnknown is an unannotated, uninitialized binding. It is not an
	// error by itself; uses of it stay silent.
	KindUnknown
	// KindError marks a subtree a diagnostic was already reported for.
	// Everything containing it stays silent.
	KindError
)

// Surface names match what users write in annotations.
var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindPoint:     "Point",
	KindLength:    "Length",
	KindAngle:     "Angle",
	KindArea:      "Area",
	KindBool:      "Bool",
	KindI32:       "I32",
	KindF64:       "F64",
	KindReal:      "Real",
	KindAlgebraic: "Algebraic",
	KindView:      "View",
	KindArray:     "array",
	KindStruct:    "struct",
	KindFunction:  "fn",
	KindReference: "reference",
	KindUnknown:   "unknown",
	KindError:     "error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// TypeID is a stable index into one unit's type interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }

// StructID indexes one unit's Type Table, monotonic in collection order.
type StructID uint32

const NoStructID StructID = 0

func (id StructID) IsValid() bool { return id != NoStructID }

// FnID indexes one unit's function signature table.
type FnID uint32

const NoFnID FnID = 0

func (id FnID) IsValid() bool { return id != NoFnID }

// Type is a structural descriptor. Elem is set for arrays and references,
// Count for arrays, Struct for struct instances, Fn for function values.
type Type struct {
	Kind   Kind
	Elem   TypeID
	Count  uint32
	Struct StructID
	Fn     FnID
}

func MakeArray(elem TypeID, count uint32) Type {
	return Type{Kind: KindArray, Elem: elem, Count: count}
}

func MakeReference(elem TypeID) Type {
	return Type{Kind: KindReference, Elem: elem}
}

func MakeStruct(id StructID) Type {
	return Type{Kind: KindStruct, Struct: id}
}

func MakeFunction(id FnID) Type {
	return Type{Kind: KindFunction, Fn: id}
}

// IsScalarNumeric reports dimensionless numeric kinds.
func (k Kind) IsScalarNumeric() bool {
	return k == KindI32 || k == KindF64 || k == KindReal
}

// IsNumeric covers every kind negation and ordering apply to.
func (k Kind) IsNumeric() bool {
	return k.IsScalarNumeric() || k == KindLength || k == KindAngle || k == KindArea || k == KindAlgebraic
}

// IsEntity reports kinds `&` may take the address of.
func (k Kind) IsEntity() bool {
	switch k {
	case KindPoint, KindLength, KindAngle, KindArea, KindStruct:
		return true
	}
	return false
}

// Format renders a descriptor for diagnostics, resolving nested IDs
// through the interner.
func (in *Interner) Format(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "invalid"
	}
	switch t.Kind {
	case KindArray:
		return in.Format(t.Elem) + "[" + strconv.FormatUint(uint64(t.Count), 10) + "]"
	case KindReference:
		return "&" + in.Format(t.Elem)
	case KindStruct:
		if info := in.StructInfo(t.Struct); info != nil {
			return info.Name
		}
		return "struct"
	case KindFunction:
		if sig := in.FnInfo(t.Fn); sig != nil {
			return fmt.Sprintf("fn/%d", len(sig.Params))
		}
		return "fn"
	default:
		return t.Kind.String()
	}
}
