package resolver

import (
	"testing"

	"tcad/internal/diag"
	"tcad/internal/parser"
	"tcad/internal/resolved"
	"tcad/internal/source"
	"tcad/internal/symbols"
)

func resolveSrc(t *testing.T, src string) (*resolved.Tree, *symbols.Table, *diag.Bag) {
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
	tree := Resolve(parsed, table, rep)
	return tree, table, bag
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestSimpleLetChain(t *testing.T) {
	tree, table, bag := resolveSrc(t, "sketch s { let x = 10mm; let y = x; }")
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	sk := tree.Sketches[0]
	if len(sk.Body) != 2 {
		t.Fatalf("body = %+v", sk.Body)
	}
	letY := sk.Body[1].(*resolved.Let)
	ref, ok := letY.Init.(*resolved.SymbolRef)
	if !ok {
		t.Fatalf("y's init should be a symbol ref, got %+v", letY.Init)
	}
	letX := sk.Body[0].(*resolved.Let)
	if ref.Symbol != letX.Symbol {
		t.Fatalf("y's init resolves to %v, want x's symbol %v", ref.Symbol, letX.Symbol)
	}
	if table.Name(ref.Symbol) != "x" {
		t.Fatalf("resolved name = %q", table.Name(ref.Symbol))
	}
}

func TestUndefinedSymbol(t *testing.T) {
	tree, _, bag := resolveSrc(t, "sketch s { let x = undefined_var; }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.NameUndefinedSymbol {
		t.Fatalf("codes = %v, want exactly one UndefinedSymbol", got)
	}
	// The failed statement is dropped from the tree.
	if len(tree.Sketches[0].Body) != 0 {
		t.Fatalf("body = %+v, want the bad let dropped", tree.Sketches[0].Body)
	}
}

func TestDuplicateDefinitionExactlyOne(t *testing.T) {
	_, _, bag := resolveSrc(t, "sketch s { let x = 10mm; let x = 20mm; }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.NameDuplicateDefinition {
		t.Fatalf("codes = %v, want exactly one DuplicateDefinition", got)
	}
}

func TestShadowingInnermostWins(t *testing.T) {
	tree, _, bag := resolveSrc(t, `
sketch s {
	let x = 1;
	for i in 0..3 {
		let x = 2;
		let inner = x;
	}
	let outer = x;
}`)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	sk := tree.Sketches[0]
	outerLet := sk.Body[0].(*resolved.Let)
	loop := sk.Body[1].(*resolved.For)
	shadowLet := loop.Body[0].(*resolved.Let)
	innerRef := loop.Body[1].(*resolved.Let).Init.(*resolved.SymbolRef)
	afterRef := sk.Body[2].(*resolved.Let).Init.(*resolved.SymbolRef)

	if innerRef.Symbol != shadowLet.Symbol {
		t.Fatalf("inner use resolves to %v, want shadow %v", innerRef.Symbol, shadowLet.Symbol)
	}
	if afterRef.Symbol != outerLet.Symbol {
		t.Fatalf("use after the loop resolves to %v, want outer %v", afterRef.Symbol, outerLet.Symbol)
	}
}

func TestShadowInChildScopeIsNotDuplicate(t *testing.T) {
	_, _, bag := resolveSrc(t, `
sketch s {
	let x = 1;
	fn f(x: I32) -> I32 {
		let y = x;
		return y;
	}
}`)
	if bag.HasErrors() {
		t.Fatalf("shadowing in a child scope must not report, got %v", bag.Items())
	}
}

func TestLetInitSeesOuterBinding(t *testing.T) {
	tree, _, bag := resolveSrc(t, `
sketch s {
	let x = 1;
	for i in 0..3 {
		let x = x;
	}
}`)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	sk := tree.Sketches[0]
	outer := sk.Body[0].(*resolved.Let)
	inner := sk.Body[1].(*resolved.For).Body[0].(*resolved.Let)
	ref := inner.Init.(*resolved.SymbolRef)
	if ref.Symbol != outer.Symbol {
		t.Fatalf("init of shadowing let resolves to %v, want outer %v", ref.Symbol, outer.Symbol)
	}
}

func TestStructRegistrationAndBackfill(t *testing.T) {
	_, table, bag := resolveSrc(t, `
struct Point {
	x: Length,
	y: Length,
	fn flip() -> Point {
		return Point { x: y, y: x };
	}
}`)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	id := table.Lookup(table.Interner.Intern("Point"), table.Global())
	if !id.IsValid() {
		t.Fatal("Point must be registered in the global scope")
	}
	sym := table.Symbol(id)
	if sym.Kind != symbols.SymStruct || len(sym.Fields) != 2 || len(sym.Methods) != 1 {
		t.Fatalf("struct symbol = %+v", sym)
	}
	if table.Name(sym.Fields[0]) != "x" || table.Name(sym.Methods[0]) != "flip" {
		t.Fatalf("backfill order wrong: %v %v", table.Name(sym.Fields[0]), table.Name(sym.Methods[0]))
	}
}

func TestForwardStructReference(t *testing.T) {
	_, _, bag := resolveSrc(t, `
struct Segment {
	a: Point,
	b: Point,
}
struct Point {
	x: Length,
	y: Length,
}`)
	if bag.HasErrors() {
		t.Fatalf("forward reference must resolve, got %v", bag.Items())
	}
}

func TestUnresolvedType(t *testing.T) {
	_, _, bag := resolveSrc(t, "sketch s { let p: Widget = 1; }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.NameUnresolvedType {
		t.Fatalf("codes = %v, want exactly one UnresolvedType", got)
	}
}

func TestUndefinedFunctionCall(t *testing.T) {
	_, _, bag := resolveSrc(t, "sketch s { let x = missing(1, 2); }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.NameUndefinedFunction {
		t.Fatalf("codes = %v, want exactly one UndefinedFunction", got)
	}
}

func TestRecursiveFunction(t *testing.T) {
	_, _, bag := resolveSrc(t, `
sketch s {
	fn fact(n: I32) -> I32 {
		return fact(n - 1) * n;
	}
}`)
	if bag.HasErrors() {
		t.Fatalf("recursion must resolve, got %v", bag.Items())
	}
}

func TestInvalidReference(t *testing.T) {
	_, _, bag := resolveSrc(t, "sketch s { let r = &(1 + 2); }")
	got := codes(bag)
	if len(got) != 1 || got[0] != diag.NameInvalidReference {
		t.Fatalf("codes = %v, want exactly one InvalidReference", got)
	}
}

func TestSiblingsContinueAfterFailure(t *testing.T) {
	tree, _, bag := resolveSrc(t, `
sketch s {
	let a = ghost;
	let b = 2;
	let c = other_ghost;
	let d = b;
}`)
	got := codes(bag)
	if len(got) != 2 {
		t.Fatalf("codes = %v, want two UndefinedSymbol", got)
	}
	if len(tree.Sketches[0].Body) != 2 {
		t.Fatalf("surviving statements = %+v, want b and d", tree.Sketches[0].Body)
	}
}

func TestDeterministicResolution(t *testing.T) {
	src := `
struct Point { x: Length, y: Length, }
sketch s {
	let p = Point { x: 1mm, y: 2mm };
	let q = ghost;
	for i in 0..3 { let z = i; }
}`
	_, _, bag1 := resolveSrc(t, src)
	_, _, bag2 := resolveSrc(t, src)
	a, b := bag1.Items(), bag2.Items()
	if len(a) != len(b) {
		t.Fatalf("runs differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Primary != b[i].Primary {
			t.Fatalf("diagnostic %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestFnBodySeesSketchBinding(t *testing.T) {
	tree, _, bag := resolveSrc(t, `
sketch s {
	let w = 10mm;
	fn area() -> Area { return w * w; }
}`)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	sk := tree.Sketches[0]
	if len(sk.Fns) != 1 || len(sk.Fns[0].Body) != 1 {
		t.Fatalf("fns = %+v", sk.Fns)
	}
	ret := sk.Fns[0].Body[0].(*resolved.Return)
	mul := ret.Value.(*resolved.Binary)
	letW := sk.Body[0].(*resolved.Let)
	if mul.Left.(*resolved.SymbolRef).Symbol != letW.Symbol {
		t.Fatalf("fn body does not bind the sketch let")
	}
}

func TestStatementCallsLaterFn(t *testing.T) {
	_, _, bag := resolveSrc(t, `
sketch s {
	let a = twice(2);
	fn twice(n: I32) -> I32 { return n + n; }
}`)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
}
