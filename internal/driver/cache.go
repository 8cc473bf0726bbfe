package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"wbprotofmt/internal/source"
)

// Increment when the payload format changes.
const cacheSchemaVersion uint16 = 1

// FormatCache memoizes formatted output keyed by content hash and
// option fingerprint, so unchanged files skip the parse and layout
// passes entirely. Thread-safe for concurrent workers.
type FormatCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema      uint16
	Fingerprint string
	Output      []byte
}

// OpenFormatCache initializes the cache at the standard location
// ($XDG_CACHE_HOME or ~/.cache).
func OpenFormatCache(app string) (*FormatCache, error) {
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
	return &FormatCache{dir: dir}, nil
}

// OpenFormatCacheAt initializes the cache at an explicit directory.
func OpenFormatCacheAt(dir string) (*FormatCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FormatCache{dir: dir}, nil
}

func fingerprint(indentWidth int, jsFormatter string) string {
	return fmt.Sprintf("v%d|indent=%d|js=%s", cacheSchemaVersion, indentWidth, jsFormatter)
}

func (c *FormatCache) pathFor(file *source.File, fp string) string {
	h := sha256.New()
	h.Write(file.Hash[:])
	h.Write([]byte(fp))
	return filepath.Join(c.dir, "fmt", hex.EncodeToString(h.Sum(nil))+".mp")
}

// Lookup returns the cached output for the file, if present and
// recorded under the same schema and fingerprint.
func (c *FormatCache) Lookup(file *source.File, fp string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(file, fp))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion || payload.Fingerprint != fp {
		return nil, false
	}
	return payload.Output, true
}

// Store records formatted output for the file. Failures are
// swallowed: the cache is an optimization, never a correctness
// dependency.
func (c *FormatCache) Store(file *source.File, fp string, output []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(file, fp)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer os.Remove(f.Name())

	payload := cachePayload{
		Schema:      cacheSchemaVersion,
		Fingerprint: fp,
		Output:      output,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	// Atomic replace.
	_ = os.Rename(f.Name(), p)
}

// DropAll invalidates the whole cache.
func (c *FormatCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
