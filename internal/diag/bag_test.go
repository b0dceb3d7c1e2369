package diag

import (
	"testing"

	"tcad/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		b.Add(Diagnostic{Severity: SevError, Code: NameUndefinedSymbol})
	}
	if b.Len() != 2 {
		t.Fatalf("expected limit of 2, got %d", b.Len())
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(Diagnostic{Severity: SevError, Code: TypeMismatch, Primary: source.Span{File: 1, Start: 20, End: 21}})
	b.Add(Diagnostic{Severity: SevError, Code: NameUndefinedSymbol, Primary: source.Span{File: 1, Start: 5, End: 6}})
	b.Add(Diagnostic{Severity: SevWarning, Code: TypeUnknown, Primary: source.Span{File: 1, Start: 5, End: 6}})
	b.Sort()

	items := b.Items()
	if items[0].Code != NameUndefinedSymbol {
		t.Fatalf("expected earliest span first, got %v", items[0].Code)
	}
	if items[1].Code != TypeUnknown {
		t.Fatalf("expected warning to follow same-span error, got %v", items[1].Code)
	}
	if items[2].Code != TypeMismatch {
		t.Fatalf("expected later span last, got %v", items[2].Code)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(8)
	d := Diagnostic{Severity: SevError, Code: TypeMismatch, Primary: source.Span{File: 1, Start: 3, End: 9}}
	b.Add(d)
	b.Add(d)
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("expected dedup to 1, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(Diagnostic{Severity: SevWarning, Code: TypeUnknown})
	if b.HasErrors() {
		t.Fatalf("warnings are not errors")
	}
	b.Add(Diagnostic{Severity: SevError, Code: TypeMismatch})
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors after SevError")
	}
}

func TestCodeString(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:      "L1001",
		SynUnexpectedToken:  "S2001",
		NameUndefinedSymbol: "N3001",
		TypeMismatch:        "T4001",
		IOLoadFileError:     "D5001",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("%d: expected %s, got %s", code, want, got)
		}
	}
}

func TestBagUnbounded(t *testing.T) {
	b := NewBag(0)
	for i := 0; i < 100; i++ {
		if !b.Add(Diagnostic{Severity: SevError, Code: TypeMismatch}) {
			t.Fatalf("add %d rejected on unbounded bag", i)
		}
	}
	if b.Len() != 100 {
		t.Fatalf("expected 100, got %d", b.Len())
	}
}
