package ast

import "tcad/internal/source"

// File is one parsed source file.
type File struct {
	FileID   source.FileID
	Imports  []ImportDecl
	Structs  []StructDecl
	Sketches []SketchDecl
}

// ImportDecl is `import "path";`.
type ImportDecl struct {
	Path string
	Sp   source.Span
}

// TypeRef is a syntactic type annotation: `Name`, `&Name`, or `Name[n]`.
type TypeRef struct {
	Name      string
	Reference bool
	Array     bool
	ArrayLen  uint32
	Sp        source.Span
}

func (t *TypeRef) Span() source.Span { return t.Sp }

// StructDecl is `struct Name { fields; methods }`.
type StructDecl struct {
	Name    string
	NameSp  source.Span
	Fields  []FieldDecl
	Methods []FnDecl
	Sp      source.Span
}

// FieldDecl is `Name: Type,` inside a struct body.
type FieldDecl struct {
	Name string
	Type TypeRef
	Sp   source.Span
}

// FnDecl is `fn Name(params) [-> Type] { Body }`, either a struct method or
// a sketch-local function.
type FnDecl struct {
	Name   string
	NameSp source.Span
	Params []Param
	Return *TypeRef
	Body   []Stmt
	Sp     source.Span
}

type Param struct {
	Name string
	Type TypeRef
	Sp   source.Span
}

// SketchDecl is `sketch Name { ... }`. Function definitions may appear
// anywhere in the body; they are collected here and all registered before
// the statements run.
type SketchDecl struct {
	Name   string
	NameSp source.Span
	Fns    []FnDecl
	Body   []Stmt
	Sp     source.Span
}
