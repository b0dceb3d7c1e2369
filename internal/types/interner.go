package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins caches TypeIDs for the primitive kinds.
type Builtins struct {
	Point     TypeID
	Length    TypeID
	Angle     TypeID
	Area      TypeID
	Bool      TypeID
	I32       TypeID
	F64       TypeID
	Real      TypeID
	Algebraic TypeID
	View      TypeID
	Unknown   TypeID
	Error     TypeID
}

// FieldInfo is one declared struct field.
type FieldInfo struct {
	Name string
	Type TypeID
}

// StructInfo is one Type Table entry: an append-only struct layout.
type StructInfo struct {
	Name   string
	Fields []FieldInfo
}

// Field finds a declared field by name.
func (si *StructInfo) Field(name string) (FieldInfo, bool) {
	for _, f := range si.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldInfo{}, false
}

// FnInfo is one function signature.
type FnInfo struct {
	Params []TypeID
	Result TypeID // NoTypeID for procedures
}

// Interner assigns stable structural TypeIDs within one unit. It is not
// shared across units.
type Interner struct {
	types    []Type
	index    map[Type]TypeID
	builtins Builtins
	structs  []StructInfo
	fns      []FnInfo
}

// NewInterner constructs an interner seeded with the primitive types.
func NewInterner() *Interner {
	in := &Interner{
		index:   make(map[Type]TypeID, 32),
		structs: make([]StructInfo, 1), // index 0 reserved for NoStructID
		fns:     make([]FnInfo, 1),     // index 0 reserved for NoFnID
	}
	in.internRaw(Type{Kind: KindInvalid}) // occupies NoTypeID
	in.builtins = Builtins{
		Point:     in.Intern(Type{Kind: KindPoint}),
		Length:    in.Intern(Type{Kind: KindLength}),
		Angle:     in.Intern(Type{Kind: KindAngle}),
		Area:      in.Intern(Type{Kind: KindArea}),
		Bool:      in.Intern(Type{Kind: KindBool}),
		I32:       in.Intern(Type{Kind: KindI32}),
		F64:       in.Intern(Type{Kind: KindF64}),
		Real:      in.Intern(Type{Kind: KindReal}),
		Algebraic: in.Intern(Type{Kind: KindAlgebraic}),
		View:      in.Intern(Type{Kind: KindView}),
		Unknown:   in.Intern(Type{Kind: KindUnknown}),
		Error:     in.Intern(Type{Kind: KindError}),
	}
	return in
}

// Builtins returns the cached primitive TypeIDs.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern ensures the descriptor has a stable TypeID. Identical descriptors
// always receive the same ID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if id, ok := in.index[t]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types arena overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[t] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if !id.IsValid() || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics on an invalid id.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// Kind returns the kind behind id, or KindInvalid.
func (in *Interner) Kind(id TypeID) Kind {
	t, ok := in.Lookup(id)
	if !ok {
		return KindInvalid
	}
	return t.Kind
}

// NewStruct appends a layout to the Type Table and returns its monotonic ID.
func (in *Interner) NewStruct(info StructInfo) StructID {
	n, err := safecast.Conv[uint32](len(in.structs))
	if err != nil {
		panic(fmt.Errorf("struct table overflow: %w", err))
	}
	id := StructID(n)
	in.structs = append(in.structs, info)
	return id
}

// StructInfo returns the layout for id, or nil. The returned pointer allows
// the collection pass to backfill fields.
func (in *Interner) StructInfo(id StructID) *StructInfo {
	if !id.IsValid() || int(id) >= len(in.structs) {
		return nil
	}
	return &in.structs[id]
}

// Structs reports the number of collected layouts.
func (in *Interner) Structs() int { return len(in.structs) - 1 }

// NewFn appends a signature and returns its ID.
func (in *Interner) NewFn(info FnInfo) FnID {
	n, err := safecast.Conv[uint32](len(in.fns))
	if err != nil {
		panic(fmt.Errorf("fn table overflow: %w", err))
	}
	id := FnID(n)
	in.fns = append(in.fns, info)
	return id
}

// FnInfo returns the signature for id, or nil.
func (in *Interner) FnInfo(id FnID) *FnInfo {
	if !id.IsValid() || int(id) >= len(in.fns) {
		return nil
	}
	return &in.fns[id]
}
