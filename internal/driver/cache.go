package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"tcad/internal/diag"
	"tcad/internal/source"
)

// Bump when the payload layout changes; stale entries are ignored.
const cacheSchemaVersion uint16 = 1

// DiskCache keeps per-file analysis summaries keyed by content hash.
// A clean entry lets a repeated check skip the whole pipeline for that
// file. Entries never store diagnostic messages, so a file that had
// findings is always re-analyzed. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the msgpack artifact written per analyzed file.
type CachePayload struct {
	Schema uint16

	Path string
	Hash [32]byte

	Diagnostics int
	Errors      bool

	// Declaration summaries, enough for a cached status line.
	Structs  []string
	Sketches []string
}

// OpenDiskCache creates (if needed) and opens the cache under the user
// cache directory, honoring XDG_CACHE_HOME.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "units", hex.EncodeToString(key[:])+".mp")
}

// Put atomically writes a payload under its content hash.
func (c *DiskCache) Put(key [32]byte, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get loads the payload for key. A missing entry or a schema mismatch is
// reported as a miss, not an error.
func (c *DiskCache) Get(key [32]byte, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll wipes the cache directory.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cachedResult answers a check from the cache when the file's content
// hash has a clean entry.
func cachedResult(c *DiskCache, file *source.File) (*FileResult, bool) {
	if c == nil {
		return nil, false
	}
	var payload CachePayload
	hit, err := c.Get(file.Hash, &payload)
	if err != nil || !hit {
		return nil, false
	}
	if payload.Diagnostics != 0 || payload.Errors {
		return nil, false
	}
	return &FileResult{
		Path:   file.Path,
		FileID: file.ID,
		Bag:    diag.NewBag(0),
		Cached: true,
	}, true
}

// storeResult records a finished check. Cache write failures are not
// fatal to the run.
func storeResult(c *DiskCache, file *source.File, res *FileResult) {
	if c == nil || res.IR == nil {
		return
	}
	payload := CachePayload{
		Schema:      cacheSchemaVersion,
		Path:        file.Path,
		Hash:        file.Hash,
		Diagnostics: res.Bag.Len(),
		Errors:      res.Bag.HasErrors(),
	}
	for i := range res.IR.Structs {
		payload.Structs = append(payload.Structs, res.Table.Name(res.IR.Structs[i].Symbol))
	}
	for i := range res.IR.Sketches {
		payload.Sketches = append(payload.Sketches, res.Table.Interner.MustLookup(res.IR.Sketches[i].Name))
	}
	_ = c.Put(file.Hash, &payload)
}
