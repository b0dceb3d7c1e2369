package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tcad/internal/source"
	"tcad/internal/token"
)

const goodSrc = `sketch main {
    let w: Length = 10mm;
    let h: Length = 5mm;
    let area: Area = w * h;
}
`

const badSrc = `sketch main {
    let x: Length = 3deg;
    let y = missing;
}
`

func virtualFile(t *testing.T, src string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("main.tcad", []byte(src)))
}

func TestTokenizeFile(t *testing.T) {
	toks, bag := TokenizeFile(virtualFile(t, goodSrc), 0)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("token stream must end with EOF")
	}
}

func TestCheckFileClean(t *testing.T) {
	res := CheckFile(virtualFile(t, goodSrc), 0)
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%+v", res.Bag.Items())
	}
	if res.IR == nil || len(res.IR.Sketches) != 1 {
		t.Fatalf("expected one checked sketch")
	}
}

func TestCheckFileReportsSorted(t *testing.T) {
	res := CheckFile(virtualFile(t, badSrc), 0)
	if !res.Bag.HasErrors() {
		t.Fatalf("expected errors")
	}
	items := res.Bag.Items()
	for i := 1; i < len(items); i++ {
		if items[i].Primary.Start < items[i-1].Primary.Start {
			t.Fatalf("diagnostics not sorted by position")
		}
	}
}

func writeSources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.tcad"), []byte(goodSrc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.tcad"), []byte(badSrc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCheckDirDeterministicOrder(t *testing.T) {
	dir := writeSources(t)
	_, results, err := CheckDir(context.Background(), dir, Options{Jobs: 4})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.tcad" || filepath.Base(results[1].Path) != "b.tcad" {
		t.Fatalf("results out of order: %s, %s", results[0].Path, results[1].Path)
	}
	if results[0].Bag.HasErrors() {
		t.Fatalf("a.tcad should be clean")
	}
	if !results[1].Bag.HasErrors() {
		t.Fatalf("b.tcad should have errors")
	}
}

func TestCheckFilesMissingFile(t *testing.T) {
	fs := source.NewFileSet()
	results, err := CheckFiles(context.Background(), fs, []string{"does-not-exist.tcad"}, Options{})
	if err != nil {
		t.Fatalf("CheckFiles: %v", err)
	}
	if len(results) != 1 || !results[0].Bag.HasErrors() {
		t.Fatalf("expected an I/O diagnostic")
	}
}

func TestDiskCacheSkipsCleanFiles(t *testing.T) {
	dir := writeSources(t)
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := Options{Cache: cache}

	_, first, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached || first[1].Cached {
		t.Fatalf("first run should not hit the cache")
	}

	_, second, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatalf("clean file should be served from cache")
	}
	if second[1].Cached {
		t.Fatalf("file with errors must be re-analyzed")
	}
	if !second[1].Bag.HasErrors() {
		t.Fatalf("re-analysis should reproduce the errors")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	var key [32]byte
	key[0] = 0xAB

	in := CachePayload{
		Schema:   cacheSchemaVersion,
		Path:     "a.tcad",
		Hash:     key,
		Structs:  []string{"Plate"},
		Sketches: []string{"main"},
	}
	if err := cache.Put(key, &in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out CachePayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if out.Path != in.Path || len(out.Sketches) != 1 || out.Sketches[0] != "main" {
		t.Fatalf("payload mismatch: %+v", out)
	}

	var missing [32]byte
	if hit, _ := cache.Get(missing, &out); hit {
		t.Fatalf("unexpected hit for unknown key")
	}
}
