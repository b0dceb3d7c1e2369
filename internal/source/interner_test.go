package source

import "testing"

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Intern("width")
	b := in.Intern("width")
	c := in.Intern("height")

	if a != b {
		t.Fatalf("same text must yield same ID: %d vs %d", a, b)
	}
	if a == c {
		t.Fatalf("distinct text must yield distinct IDs")
	}
	if got := in.MustLookup(a); got != "width" {
		t.Fatalf("lookup: expected width, got %q", got)
	}
}

func TestInternerEmptyIsSentinel(t *testing.T) {
	in := NewInterner()
	if got := in.Intern(""); got != NoStringID {
		t.Fatalf("empty string must map to NoStringID, got %d", got)
	}
	if in.Len() != 1 {
		t.Fatalf("fresh interner holds only the sentinel, got %d", in.Len())
	}
}

func TestInternerLookupUnknown(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Fatalf("unknown ID must not resolve")
	}
}
