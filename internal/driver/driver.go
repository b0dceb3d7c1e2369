// Package driver wires the analysis phases together: lex, parse, resolve,
// check. The CLI talks to this package only.
package driver

import (
	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/lexer"
	"tcad/internal/parser"
	"tcad/internal/resolved"
	"tcad/internal/resolver"
	"tcad/internal/sema"
	"tcad/internal/source"
	"tcad/internal/symbols"
	"tcad/internal/token"
	"tcad/internal/typed"
	"tcad/internal/types"
)

// Options control a single pipeline run.
type Options struct {
	MaxDiagnostics int // cap per file, 0 means unlimited
	Jobs           int // parallel workers for CheckFiles, 0 means GOMAXPROCS
	Cache          *DiskCache
}

// FileResult carries everything the pipeline produced for one file. On a
// cache hit Tree and IR are nil and Cached is set; the bag is still valid.
type FileResult struct {
	Path   string
	FileID source.FileID
	Tree   *resolved.Tree
	IR     *typed.IR
	Table  *symbols.Table
	Types  *types.Interner
	Bag    *diag.Bag
	Cached bool
}

// TokenizeFile lexes one file to the token stream, EOF included.
func TokenizeFile(file *source.File, maxDiagnostics int) ([]token.Token, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(file, diag.BagReporter{Bag: bag})
	bag.Sort()
	return toks, bag
}

// ParseFile lexes and parses one file.
func ParseFile(file *source.File, maxDiagnostics int) (*ast.File, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	f := parser.ParseFile(file, diag.BagReporter{Bag: bag})
	bag.Sort()
	return f, bag
}

// CheckFile runs the full pipeline over one file. Each file gets its own
// symbol table and type interner; nothing here is shared, so CheckFile is
// safe to call from concurrent goroutines on distinct files.
func CheckFile(file *source.File, maxDiagnostics int) *FileResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	astFile := parser.ParseFile(file, reporter)

	table := symbols.NewTable(symbols.Hints{Scopes: 64, Symbols: 256})
	tree := resolver.Resolve(astFile, table, reporter)

	in := types.NewInterner()
	ir := sema.Check(tree, table, in, reporter)

	bag.Sort()
	return &FileResult{
		Path:   file.Path,
		FileID: file.ID,
		Tree:   tree,
		IR:     ir,
		Table:  table,
		Types:  in,
		Bag:    bag,
	}
}
