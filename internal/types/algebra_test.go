package types

import (
	"testing"

	"tcad/internal/ast"
)

// Every entry of the dimensional algebra, verbatim.
func TestArithTableRoundTrip(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		op          ast.BinaryOp
		left, right TypeID
		want        TypeID
	}{
		{ast.BinAdd, b.Length, b.Length, b.Length},
		{ast.BinAdd, b.Angle, b.Angle, b.Angle},
		{ast.BinAdd, b.Area, b.Area, b.Area},
		{ast.BinAdd, b.I32, b.I32, b.I32},
		{ast.BinAdd, b.F64, b.F64, b.F64},
		{ast.BinAdd, b.Real, b.Real, b.Real},

		{ast.BinSub, b.Length, b.Length, b.Length},
		{ast.BinSub, b.Angle, b.Angle, b.Angle},
		{ast.BinSub, b.Area, b.Area, b.Area},
		{ast.BinSub, b.I32, b.I32, b.I32},
		{ast.BinSub, b.F64, b.F64, b.F64},
		{ast.BinSub, b.Real, b.Real, b.Real},

		{ast.BinMul, b.Length, b.Length, b.Area},
		{ast.BinMul, b.Length, b.F64, b.Length},
		{ast.BinMul, b.F64, b.Length, b.Length},
		{ast.BinMul, b.I32, b.I32, b.I32},
		{ast.BinMul, b.F64, b.F64, b.F64},
		{ast.BinMul, b.Real, b.Real, b.Real},

		{ast.BinDiv, b.Length, b.Length, b.F64},
		{ast.BinDiv, b.Length, b.F64, b.Length},
		{ast.BinDiv, b.Area, b.Length, b.Length},
		{ast.BinDiv, b.I32, b.I32, b.I32},
		{ast.BinDiv, b.F64, b.F64, b.F64},
		{ast.BinDiv, b.Real, b.Real, b.Real},

		{ast.BinMod, b.I32, b.I32, b.I32},

		{ast.BinPow, b.F64, b.F64, b.F64},
		{ast.BinPow, b.Real, b.Real, b.Real},
	}
	for _, tt := range tests {
		got, ok := in.ArithResult(tt.op, tt.left, tt.right)
		if !ok {
			t.Fatalf("%v %s %v: unexpectedly off-table",
				in.Format(tt.left), tt.op, in.Format(tt.right))
		}
		if got != tt.want {
			t.Fatalf("%v %s %v = %v, want %v",
				in.Format(tt.left), tt.op, in.Format(tt.right),
				in.Format(got), in.Format(tt.want))
		}
	}
}

func TestArithOffTable(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	bad := []struct {
		op          ast.BinaryOp
		left, right TypeID
	}{
		{ast.BinAdd, b.Length, b.Angle},
		{ast.BinAdd, b.Length, b.F64},
		{ast.BinAdd, b.I32, b.F64},
		{ast.BinMul, b.Area, b.Area},
		{ast.BinMul, b.Angle, b.Angle},
		{ast.BinDiv, b.F64, b.Length},
		{ast.BinMod, b.F64, b.F64},
		{ast.BinMod, b.I32, b.F64},
		{ast.BinPow, b.I32, b.I32},
		{ast.BinPow, b.Length, b.F64},
		{ast.BinAdd, b.Bool, b.Bool},
		{ast.BinAdd, b.Point, b.Point},
	}
	for _, tt := range bad {
		if got, ok := in.ArithResult(tt.op, tt.left, tt.right); ok {
			t.Fatalf("%v %s %v should be off-table, got %v",
				in.Format(tt.left), tt.op, in.Format(tt.right), in.Format(got))
		}
	}
}

func TestArithSuppression(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	// Unknown wins over everything, including Error.
	if got, ok := in.ArithResult(ast.BinAdd, b.Unknown, b.Length); !ok || got != b.Unknown {
		t.Fatalf("Unknown + Length = (%v, %v), want Unknown", got, ok)
	}
	if got, ok := in.ArithResult(ast.BinAdd, b.Unknown, b.Error); !ok || got != b.Unknown {
		t.Fatalf("Unknown + Error = (%v, %v), want Unknown", got, ok)
	}
	if got, ok := in.ArithResult(ast.BinMul, b.Error, b.Length); !ok || got != b.Error {
		t.Fatalf("Error * Length = (%v, %v), want Error", got, ok)
	}
	// Even an off-table pairing stays silent under suppression.
	if got, ok := in.ArithResult(ast.BinMod, b.Error, b.Bool); !ok || got != b.Error {
		t.Fatalf("Error %% Bool = (%v, %v), want Error", got, ok)
	}
}

func TestCompatible(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if !in.Compatible(b.Length, b.Length) {
		t.Fatal("Length must be compatible with itself")
	}
	if in.Compatible(b.Length, b.Angle) {
		t.Fatal("Length must not be compatible with Angle")
	}
	if !in.Compatible(b.Length, b.Unknown) || !in.Compatible(b.Unknown, b.Length) {
		t.Fatal("Unknown is compatible with everything")
	}
	if !in.Compatible(b.Length, b.Error) || !in.Compatible(b.Error, b.Length) {
		t.Fatal("Error is compatible with everything")
	}

	arr3 := in.Intern(MakeArray(b.Length, 3))
	arr4 := in.Intern(MakeArray(b.Length, 4))
	if in.Compatible(arr3, arr4) {
		t.Fatal("arrays of different length must differ")
	}
	if !in.Compatible(arr3, in.Intern(MakeArray(b.Length, 3))) {
		t.Fatal("structurally equal arrays must intern to the same ID")
	}
}

func TestUnaryRules(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if got, ok := in.NegResult(b.Length); !ok || got != b.Length {
		t.Fatalf("-Length = (%v, %v)", got, ok)
	}
	if _, ok := in.NegResult(b.Bool); ok {
		t.Fatal("-Bool must fail")
	}

	ref, ok := in.RefResult(b.Point)
	if !ok {
		t.Fatal("&Point must succeed")
	}
	if tt := in.MustLookup(ref); tt.Kind != KindReference || tt.Elem != b.Point {
		t.Fatalf("&Point = %+v", tt)
	}
	if _, ok := in.RefResult(b.Bool); ok {
		t.Fatal("&Bool must fail, Bool is not an entity type")
	}
	if _, ok := in.RefResult(b.View); ok {
		t.Fatal("&View must fail, View is not an entity type")
	}

	if got, ok := in.DerefResult(ref); !ok || got != b.Point {
		t.Fatalf("*(&Point) = (%v, %v), want Point", got, ok)
	}
	if _, ok := in.DerefResult(b.Point); ok {
		t.Fatal("*Point must fail")
	}

	// Suppression flows through unary rules too.
	if got, ok := in.NegResult(b.Error); !ok || got != b.Error {
		t.Fatalf("-Error = (%v, %v)", got, ok)
	}
	if got, ok := in.DerefResult(b.Unknown); !ok || got != b.Unknown {
		t.Fatalf("*Unknown = (%v, %v)", got, ok)
	}
}

func TestStructTable(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	id := in.NewStruct(StructInfo{Name: "Point"})
	info := in.StructInfo(id)
	info.Fields = append(info.Fields,
		FieldInfo{Name: "x", Type: b.Length},
		FieldInfo{Name: "y", Type: b.Length},
	)

	got := in.StructInfo(id)
	if got.Name != "Point" || len(got.Fields) != 2 {
		t.Fatalf("layout = %+v", got)
	}
	f, ok := got.Field("y")
	if !ok || f.Type != b.Length {
		t.Fatalf("field y = %+v, %v", f, ok)
	}
	if _, ok := got.Field("z"); ok {
		t.Fatal("field z must not exist")
	}

	st := in.Intern(MakeStruct(id))
	if in.Format(st) != "Point" {
		t.Fatalf("Format(struct) = %q", in.Format(st))
	}
}
