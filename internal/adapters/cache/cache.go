// Package cache persists the segmented corpus between runs as a versioned
// JSON record at a fixed path in the working directory.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gutengrep/internal/core/domain"
)

// Cache implements ports.CorpusCache as a single JSON file.
type Cache struct {
	path string
}

// New creates a Cache at the fixed default location.
func New() *Cache {
	return &Cache{path: domain.DefaultCacheFile}
}

// NewWithPath creates a Cache at an explicit location. Used for testing.
func NewWithPath(path string) *Cache {
	return &Cache{path: path}
}

// Load returns the cached record, or nil, nil when no cache file exists.
// An unreadable or undecodable cache fails loudly; it is never silently
// recomputed.
func (c *Cache) Load() (*domain.CacheRecord, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var rec domain.CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error())
	}

	if rec.Version != domain.CacheRecordVersion {
		return nil, zerr.With(domain.ErrCacheVersionMismatch, "version", rec.Version)
	}

	return &rec, nil
}

// Save writes the record via a temp file in the same directory followed by
// a rename, so a crash mid-write leaves any previous cache intact.
func (c *Cache) Save(rec domain.CacheRecord) error {
	rec.Version = domain.CacheRecordVersion

	data, err := json.Marshal(rec)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error())
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return nil
}
