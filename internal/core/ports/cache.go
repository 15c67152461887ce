package ports

import "gutengrep/internal/core/domain"

// CorpusCache persists the segmented corpus between runs.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CorpusCache interface {
	// Load returns the cached record, or nil, nil when no cache file exists.
	// A cache that exists but cannot be read or decoded is an error.
	Load() (*domain.CacheRecord, error)

	// Save writes the record, replacing any previous cache file. The write
	// is atomic: a crash mid-write leaves any previous cache intact.
	Save(rec domain.CacheRecord) error
}
