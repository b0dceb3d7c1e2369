// Package sema type-checks a resolved tree against the dimensional type
// algebra, producing the typed IR and the unit's Type Table. The symbol
// table is held frozen; the checker never mutates it.
//
// Checking is accumulate-and-continue. A failed sub-expression becomes an
// Error-typed placeholder and its ancestors stay silent, so one root cause
// never fans out into secondary diagnostics.
package sema

import (
	"tcad/internal/diag"
	"tcad/internal/resolved"
	"tcad/internal/source"
	"tcad/internal/symbols"
	"tcad/internal/typed"
	"tcad/internal/types"
)

type Checker struct {
	table    *symbols.Table
	in       *types.Interner
	reporter diag.Reporter
	b        types.Builtins

	// structIDs maps struct symbols to their Type Table entries.
	structIDs map[symbols.SymbolID]types.StructID
	// fnTypes maps function symbols to their interned function types.
	fnTypes map[symbols.SymbolID]types.TypeID
	// varTypes carries inferred binding types forward, so `let y = x`
	// picks up what checking assigned to x.
	varTypes map[symbols.SymbolID]types.TypeID

	// fnReturn is the declared return type of the enclosing function,
	// or the Unknown type outside one (and inside procedures), which
	// keeps return checking silent there.
	fnReturn types.TypeID
}

// Check runs the type checker over one unit. The interner doubles as the
// unit's Type Table and must be the one the caller keeps for downstream
// consumers.
func Check(tree *resolved.Tree, table *symbols.Table, in *types.Interner, reporter diag.Reporter) *typed.IR {
	c := &Checker{
		table:     table,
		in:        in,
		reporter:  reporter,
		b:         in.Builtins(),
		structIDs: make(map[symbols.SymbolID]types.StructID),
		fnTypes:   make(map[symbols.SymbolID]types.TypeID),
		varTypes:  make(map[symbols.SymbolID]types.TypeID),
	}
	c.fnReturn = c.b.Unknown

	c.collectStructs(tree)
	c.collectFns(tree)

	ir := &typed.IR{FileID: tree.FileID}
	for i := range tree.Structs {
		ir.Structs = append(ir.Structs, c.checkStruct(&tree.Structs[i]))
	}
	for i := range tree.Sketches {
		ir.Sketches = append(ir.Sketches, c.checkSketch(&tree.Sketches[i]))
	}
	return ir
}

// collectStructs registers every struct layout before any field type is
// translated, so mutually referential structs work.
func (c *Checker) collectStructs(tree *resolved.Tree) {
	for i := range tree.Structs {
		sym := tree.Structs[i].Symbol
		name := c.table.Name(sym)
		c.structIDs[sym] = c.in.NewStruct(types.StructInfo{Name: name})
	}
	for i := range tree.Structs {
		sym := tree.Structs[i].Symbol
		info := c.in.StructInfo(c.structIDs[sym])
		for _, fieldID := range c.table.Symbol(sym).Fields {
			field := c.table.Symbol(fieldID)
			info.Fields = append(info.Fields, types.FieldInfo{
				Name: c.table.Name(fieldID),
				Type: c.typeFromRef(field.Type),
			})
		}
	}
}

// collectFns interns every function signature before bodies are checked,
// so calls and recursion see complete signatures.
func (c *Checker) collectFns(tree *resolved.Tree) {
	for i := range tree.Structs {
		for j := range tree.Structs[i].Methods {
			c.collectFn(tree.Structs[i].Methods[j].Symbol)
		}
	}
	for i := range tree.Sketches {
		for j := range tree.Sketches[i].Fns {
			c.collectFn(tree.Sketches[i].Fns[j].Symbol)
		}
	}
}

func (c *Checker) collectFn(sym symbols.SymbolID) {
	fn := c.table.Symbol(sym)
	info := types.FnInfo{Result: types.NoTypeID}
	for _, paramID := range fn.Params {
		info.Params = append(info.Params, c.typeFromRef(c.table.Symbol(paramID).Type))
	}
	if fn.Return != nil {
		info.Result = c.typeFromRef(fn.Return)
	}
	c.fnTypes[sym] = c.in.Intern(types.MakeFunction(c.in.NewFn(info)))
}

// typeFromRef translates a resolved annotation into a TypeID. A nil ref is
// an unannotated binding: Unknown, not an error.
func (c *Checker) typeFromRef(ref *symbols.TypeRef) types.TypeID {
	if ref == nil {
		return c.b.Unknown
	}
	var base types.TypeID
	if ref.Symbol.IsValid() {
		id, ok := c.structIDs[ref.Symbol]
		if !ok {
			return c.b.Error
		}
		base = c.in.Intern(types.MakeStruct(id))
	} else {
		base = c.builtinByName(c.table.Interner.MustLookup(ref.Name))
	}
	if ref.Array {
		base = c.in.Intern(types.MakeArray(base, ref.ArrayLen))
	}
	if ref.Reference {
		base = c.in.Intern(types.MakeReference(base))
	}
	return base
}

func (c *Checker) builtinByName(name string) types.TypeID {
	switch name {
	case "Point":
		return c.b.Point
	case "Length":
		return c.b.Length
	case "Angle":
		return c.b.Angle
	case "Area":
		return c.b.Area
	case "Bool":
		return c.b.Bool
	case "I32":
		return c.b.I32
	case "F64":
		return c.b.F64
	case "Real":
		return c.b.Real
	case "Algebraic":
		return c.b.Algebraic
	case "View":
		return c.b.View
	default:
		return c.b.Error
	}
}

func (c *Checker) checkStruct(st *resolved.Struct) typed.Struct {
	out := typed.Struct{Symbol: st.Symbol, Sp: st.Sp}
	for i := range st.Methods {
		out.Methods = append(out.Methods, c.checkFn(&st.Methods[i]))
	}
	return out
}

// checkSketch walks the statements before the function bodies: signatures
// were interned up front, so statement calls still check, while function
// bodies get the inferred types of the sketch bindings they read.
func (c *Checker) checkSketch(sk *resolved.Sketch) typed.Sketch {
	out := typed.Sketch{Name: sk.Name, Scope: sk.Scope, Sp: sk.Sp}
	for _, stmt := range sk.Body {
		if s := c.checkStmt(stmt); s != nil {
			out.Body = append(out.Body, s)
		}
	}
	for i := range sk.Fns {
		out.Fns = append(out.Fns, c.checkFn(&sk.Fns[i]))
	}
	return out
}

func (c *Checker) checkFn(fn *resolved.Fn) typed.Fn {
	sym := c.table.Symbol(fn.Symbol)
	prev := c.fnReturn
	if sym.Return != nil {
		c.fnReturn = c.typeFromRef(sym.Return)
	} else {
		c.fnReturn = c.b.Unknown
	}
	defer func() { c.fnReturn = prev }()

	out := typed.Fn{Symbol: fn.Symbol, Scope: fn.Scope, Sp: fn.Sp}
	for _, stmt := range fn.Body {
		if s := c.checkStmt(stmt); s != nil {
			out.Body = append(out.Body, s)
		}
	}
	return out
}

// bad is the Error-typed placeholder every local failure collapses to.
func (c *Checker) bad(sp source.Span) *typed.Bad {
	return &typed.Bad{Ty: c.b.Error, Sp: sp}
}
