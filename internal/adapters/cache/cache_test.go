package cache_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gutengrep/internal/adapters/cache"
	"gutengrep/internal/core/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sentences_cache.json")
	c := cache.NewWithPath(path)

	rec := domain.CacheRecord{
		InspecHash: domain.Fingerprint("books/*.txt"),
		Sentences:  []string{"Call me Ishmael.", "The whale swam.", ""},
	}

	require.NoError(t, c.Save(rec))

	got, err := c.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.CacheRecordVersion, got.Version)
	assert.Equal(t, rec.InspecHash, got.InspecHash)
	assert.Equal(t, rec.Sentences, got.Sentences)
}

func TestCache_RoundTrip_EmptyCorpus(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sentences_cache.json")
	c := cache.NewWithPath(path)

	require.NoError(t, c.Save(domain.CacheRecord{Sentences: []string{}}))

	got, err := c.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Sentences)
}

func TestCache_Load_Missing(t *testing.T) {
	t.Parallel()

	c := cache.NewWithPath(filepath.Join(t.TempDir(), "absent.json"))

	got, err := c.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_Load_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sentences_cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0o600))

	c := cache.NewWithPath(path)

	_, err := c.Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheDecodeFailed.Error())
}

func TestCache_Load_VersionMismatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sentences_cache.json")
	data, err := json.Marshal(domain.CacheRecord{Version: 99, Sentences: []string{"x"}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c := cache.NewWithPath(path)

	_, err = c.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheVersionMismatch)
}

func TestCache_Save_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sentences_cache.json")
	c := cache.NewWithPath(path)

	require.NoError(t, c.Save(domain.CacheRecord{Sentences: []string{"old"}}))
	require.NoError(t, c.Save(domain.CacheRecord{Sentences: []string{"new"}}))

	got, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got.Sentences)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
