package sema

import (
	"testing"

	"tcad/internal/diag"
	"tcad/internal/parser"
	"tcad/internal/resolver"
	"tcad/internal/source"
	"tcad/internal/symbols"
	"tcad/internal/typed"
	"tcad/internal/types"
)

func checkSrc(t *testing.T, src string) (*typed.IR, *types.Interner, *symbols.Table, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.tcad", []byte(src)))
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	parsed := parser.ParseFile(file, rep)
	if bag.HasErrors() {
		t.Fatalf("parse diagnostics: %v", bag.Items())
	}
	table := symbols.NewTable(symbols.Hints{})
	tree := resolver.Resolve(parsed, table, rep)
	in := types.NewInterner()
	ir := Check(tree, table, in, rep)
	return ir, in, table, bag
}

func checkClean(t *testing.T, src string) (*typed.IR, *types.Interner) {
	t.Helper()
	ir, in, _, bag := checkSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	return ir, in
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func letType(t *testing.T, ir *typed.IR, in *types.Interner, sketch, index int) types.Kind {
	t.Helper()
	let, ok := ir.Sketches[sketch].Body[index].(*typed.Let)
	if !ok {
		t.Fatalf("statement %d is %T, want let", index, ir.Sketches[sketch].Body[index])
	}
	return in.Kind(let.Ty)
}

// Scenario: a unit literal flows through inference.
func TestInferLengthChain(t *testing.T) {
	ir, in := checkClean(t, "sketch t { let x = 10mm; let y = x; }")
	if got := letType(t, ir, in, 0, 1); got != types.KindLength {
		t.Fatalf("y's type = %v, want Length", got)
	}
}

func TestUndefinedVarSingleError(t *testing.T) {
	_, _, _, bag := checkSrc(t, "sketch t { let x = undefined_var; }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.NameUndefinedSymbol {
		t.Fatalf("codes = %v, want exactly one UndefinedSymbol", got)
	}
}

func TestConstraintTypeMismatch(t *testing.T) {
	_, _, _, bag := checkSrc(t, `sketch t { let x: Length = 10mm; let y: Angle = 45deg; x = y; }`)
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeMismatch {
		t.Fatalf("codes = %v, want exactly one TypeMismatch", got)
	}
	if msg := bag.Items()[0].Message; msg != "type mismatch: expected Length, found Angle" {
		t.Fatalf("message = %q", msg)
	}
}

func TestLengthTimesLengthIsArea(t *testing.T) {
	ir, in := checkClean(t, "sketch t { let x = 10mm; let y = 20mm; let sum = x * y; }")
	if got := letType(t, ir, in, 0, 2); got != types.KindArea {
		t.Fatalf("sum's type = %v, want Area", got)
	}
}

func TestDuplicateLetSingleError(t *testing.T) {
	_, _, _, bag := checkSrc(t, "sketch t { let x = 10mm; let x = 20mm; }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.NameDuplicateDefinition {
		t.Fatalf("codes = %v, want exactly one DuplicateDefinition", got)
	}
}

func TestForLoopVarIsI32(t *testing.T) {
	ir, in := checkClean(t, "sketch t { for i in 0..10 { let y = i * 2; } }")
	loop := ir.Sketches[0].Body[0].(*typed.For)
	if got := in.Kind(loop.Body[0].(*typed.Let).Ty); got != types.KindI32 {
		t.Fatalf("y's type = %v, want I32", got)
	}
}

// One root cause, one diagnostic: the Error type must not cascade.
func TestErrorSuppression(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
sketch t {
	let bad = 10mm + 45deg;
	let worse = bad * 2.0;
	let worst = worse + bad;
}`)
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeInvalidOperation {
		t.Fatalf("codes = %v, want exactly one InvalidOperation", got)
	}
}

func TestUnknownStaysSilent(t *testing.T) {
	ir, in := checkClean(t, "sketch t { let x; let y = x + 1; }")
	if got := letType(t, ir, in, 0, 1); got != types.KindUnknown {
		t.Fatalf("y's type = %v, want Unknown", got)
	}
}

func TestAnnotatedLetMismatch(t *testing.T) {
	_, _, _, bag := checkSrc(t, "sketch t { let x: Angle = 10mm; }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeMismatch {
		t.Fatalf("codes = %v, want exactly one TypeMismatch", got)
	}
}

func TestDimensionalAlgebraEndToEnd(t *testing.T) {
	ir, in := checkClean(t, `
sketch t {
	let w = 10mm;
	let h = 20mm;
	let area = w * h;
	let ratio = w / h;
	let scaled = w * 2.0;
	let back = area / h;
}`)
	want := []types.Kind{
		types.KindLength, types.KindLength, types.KindArea,
		types.KindF64, types.KindLength, types.KindLength,
	}
	for i, k := range want {
		if got := letType(t, ir, in, 0, i); got != k {
			t.Fatalf("statement %d type = %v, want %v", i, got, k)
		}
	}
}

func TestStructFieldAccess(t *testing.T) {
	ir, in := checkClean(t, `
struct Point { x: Length, y: Length, }
sketch t {
	let p = Point { x: 1mm, y: 2mm };
	let px = p.x;
}`)
	if got := letType(t, ir, in, 0, 1); got != types.KindLength {
		t.Fatalf("p.x type = %v, want Length", got)
	}
}

func TestFieldNotFound(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
struct Point { x: Length, y: Length, }
sketch t {
	let p = Point { x: 1mm, y: 2mm };
	let pz = p.z;
}`)
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeFieldNotFound {
		t.Fatalf("codes = %v, want exactly one FieldNotFound", got)
	}
}

// Struct literals validate names and types; missing fields are permitted.
func TestStructLitValidation(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
struct Point { x: Length, y: Length, }
sketch t {
	let a = Point { z: 1mm };
	let b = Point { x: 45deg };
	let c = Point { x: 1mm };
}`)
	got := codes(bag)
	if len(got) != 2 || got[0] != diag.TypeFieldNotFound || got[1] != diag.TypeMismatch {
		t.Fatalf("codes = %v, want FieldNotFound then TypeMismatch", got)
	}
}

func TestCallChecking(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
sketch t {
	fn scale(x: Length, f: F64) -> Length {
		return x * f;
	}
	let a = scale(10mm, 2.0);
	let b = scale(10mm);
	let c = scale(45deg, 2.0);
}`)
	got := codes(bag)
	if len(got) != 2 || got[0] != diag.TypeArgumentCountMismatch || got[1] != diag.TypeArgumentTypeMismatch {
		t.Fatalf("codes = %v, want ArgumentCountMismatch then ArgumentTypeMismatch", got)
	}
}

func TestCallResultType(t *testing.T) {
	ir, in := checkClean(t, `
sketch t {
	fn double(x: Length) -> Length {
		return x * 2.0;
	}
	let d = double(5mm);
}`)
	if got := letType(t, ir, in, 0, 0); got != types.KindLength {
		t.Fatalf("d's type = %v, want Length", got)
	}
}

func TestNotCallable(t *testing.T) {
	_, _, _, bag := checkSrc(t, "sketch t { let x = 10mm; let y = x(1); }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeNotCallable {
		t.Fatalf("codes = %v, want exactly one NotCallable", got)
	}
}

func TestReturnTypeChecked(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
sketch t {
	fn width() -> Length {
		return 45deg;
	}
}`)
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeMismatch {
		t.Fatalf("codes = %v, want exactly one TypeMismatch", got)
	}
}

func TestArrayLitAndIndex(t *testing.T) {
	ir, in := checkClean(t, `
sketch t {
	let xs = [1mm, 2mm, 3mm];
	let first = xs[0];
}`)
	xs := ir.Sketches[0].Body[0].(*typed.Let)
	arr := in.MustLookup(xs.Ty)
	if arr.Kind != types.KindArray || arr.Count != 3 || in.Kind(arr.Elem) != types.KindLength {
		t.Fatalf("xs type = %+v", arr)
	}
	if got := letType(t, ir, in, 0, 1); got != types.KindLength {
		t.Fatalf("first's type = %v, want Length", got)
	}
}

func TestArrayElementMismatch(t *testing.T) {
	_, _, _, bag := checkSrc(t, "sketch t { let xs = [1mm, 45deg]; }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeMismatch {
		t.Fatalf("codes = %v, want exactly one TypeMismatch", got)
	}
}

func TestIndexErrors(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
sketch t {
	let x = 10mm;
	let a = x[0];
	let xs = [1, 2];
	let b = xs[1mm];
}`)
	got := codes(bag)
	if len(got) != 2 || got[0] != diag.TypeInvalidArrayIndex || got[1] != diag.TypeInvalidIndexType {
		t.Fatalf("codes = %v, want InvalidArrayIndex then InvalidIndexType", got)
	}
}

func TestWithRequiresView(t *testing.T) {
	ir, _, _, bag := checkSrc(t, `
sketch t {
	let x = 10mm;
	with x { let y = 1; }
}`)
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeMismatch {
		t.Fatalf("codes = %v, want exactly one TypeMismatch", got)
	}
	// The whole with statement is rejected.
	for _, s := range ir.Sketches[0].Body {
		if _, isWith := s.(*typed.With); isWith {
			t.Fatal("rejected with statement must not survive")
		}
	}
}

func TestWithViewAnnotation(t *testing.T) {
	ir, _ := checkClean(t, `
sketch t {
	let front: View;
	with front { let y = 1; }
}`)
	if len(ir.Sketches[0].Body) != 2 {
		t.Fatalf("body = %+v", ir.Sketches[0].Body)
	}
	if _, ok := ir.Sketches[0].Body[1].(*typed.With); !ok {
		t.Fatalf("want a surviving with statement, got %T", ir.Sketches[0].Body[1])
	}
}

func TestReferenceAndDeref(t *testing.T) {
	ir, in := checkClean(t, `
sketch t {
	let x = 10mm;
	let r = &x;
	let v = *r;
}`)
	r := ir.Sketches[0].Body[1].(*typed.Let)
	rt := in.MustLookup(r.Ty)
	if rt.Kind != types.KindReference || in.Kind(rt.Elem) != types.KindLength {
		t.Fatalf("r's type = %+v, want &Length", rt)
	}
	if got := letType(t, ir, in, 0, 2); got != types.KindLength {
		t.Fatalf("v's type = %v, want Length", got)
	}
}

func TestInvalidReferenceAndDeref(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
sketch t {
	let flag = true;
	let r = &flag;
	let x = 10mm;
	let v = *x;
}`)
	got := codes(bag)
	if len(got) != 2 || got[0] != diag.TypeInvalidReference || got[1] != diag.TypeInvalidDereference {
		t.Fatalf("codes = %v, want InvalidReference then InvalidDereference", got)
	}
}

func TestModuloIntegersOnly(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
sketch t {
	let ok = 7 % 3;
	let bad = 7.0 % 3.0;
}`)
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeInvalidOperation {
		t.Fatalf("codes = %v, want exactly one InvalidOperation", got)
	}
}

func TestComparisonAndLogic(t *testing.T) {
	ir, in := checkClean(t, `
sketch t {
	let a = 10mm;
	let b = 20mm;
	let c = a < b && a != b;
}`)
	if got := letType(t, ir, in, 0, 2); got != types.KindBool {
		t.Fatalf("c's type = %v, want Bool", got)
	}
}

func TestTypeTableExposed(t *testing.T) {
	_, in := checkClean(t, `
struct Point { x: Length, y: Length, }
struct Seg { a: Point, b: Point, }
sketch t { let s = Seg { a: Point { x: 1mm, y: 2mm } }; }
`)
	if in.Structs() != 2 {
		t.Fatalf("Structs() = %d, want 2", in.Structs())
	}
	// Collection order is declaration order.
	first := in.StructInfo(types.StructID(1))
	second := in.StructInfo(types.StructID(2))
	if first.Name != "Point" || second.Name != "Seg" {
		t.Fatalf("layouts = %q, %q", first.Name, second.Name)
	}
	if f, ok := second.Field("a"); !ok || in.Kind(f.Type) != types.KindStruct {
		t.Fatalf("Seg.a = %+v, %v", f, ok)
	}
}

// A struct sharing a builtin's name must mean the struct everywhere: the
// annotation, the literal, and the recorded field layout.
func TestStructShadowsBuiltinName(t *testing.T) {
	ir, in := checkClean(t, `
struct Point { x: Length, y: Length, }
sketch t { let p: Point = Point { x: 1mm, y: 2mm }; }
`)
	if k := letType(t, ir, in, 0, 0); k != types.KindStruct {
		t.Fatalf("p is %v, want struct", k)
	}
	if f, ok := in.StructInfo(types.StructID(1)).Field("x"); !ok || in.Kind(f.Type) != types.KindLength {
		t.Fatalf("Point.x = %+v, %v", f, ok)
	}
}

func TestMethodBodyChecked(t *testing.T) {
	_, _, _, bag := checkSrc(t, `
struct Point {
	x: Length,
	y: Length,
	fn diag() -> Length {
		return x + y;
	}
	fn broken() -> Length {
		return x + 1;
	}
}`)
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeInvalidOperation {
		t.Fatalf("codes = %v, want exactly one InvalidOperation", got)
	}
}

func TestDeterministicChecking(t *testing.T) {
	src := `
struct Point { x: Length, y: Length, }
sketch t {
	let p = Point { x: 1mm, y: 45deg };
	let q = p.x + p.y;
	for i in 0..3 { let z = i % 2; }
}`
	_, _, _, bag1 := checkSrc(t, src)
	_, _, _, bag2 := checkSrc(t, src)
	a, b := bag1.Items(), bag2.Items()
	if len(a) != len(b) {
		t.Fatalf("runs differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Primary != b[i].Primary || a[i].Message != b[i].Message {
			t.Fatalf("diagnostic %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// A sketch function reading a sketch-level binding gets that binding's
// inferred type, not Unknown.
func TestFnBodyUsesSketchBindingType(t *testing.T) {
	checkClean(t, `
sketch s {
	let w = 10mm;
	fn area() -> Area { return w * w; }
}`)

	_, _, _, bag := checkSrc(t, `
sketch s {
	let w = 10mm;
	fn bad() -> Length { return w * w; }
}`)
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.TypeMismatch {
		t.Fatalf("codes = %v, want exactly one TypeMismatch", got)
	}
}
