package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// CacheRecordVersion identifies the on-disk cache format. A record written
// with a different version is rejected on load; there is no cross-version
// migration.
const CacheRecordVersion = 1

// CacheRecord is a persisted snapshot of a previously computed corpus.
// The record is keyed only by its storage location: a run with --cache set
// consumes an existing record regardless of the inspec it was built from.
// InspecHash records the originating inspec for diagnostics only.
type CacheRecord struct {
	Version    int      `json:"version"`
	InspecHash string   `json:"inspec_hash,omitempty"`
	Sentences  []string `json:"sentences"`
}

// Fingerprint returns the xxhash64 of an inspec, hex encoded, for recording
// in a CacheRecord.
func Fingerprint(inspec string) string {
	return strconv.FormatUint(xxhash.Sum64String(inspec), 16)
}
