// Package ports defines the interfaces between the application layer and
// its adapters.
package ports

import "gutengrep/internal/core/domain"

// Loader defines the interface for resolving and reading input documents.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type Loader interface {
	// Glob expands an input file pattern into an ordered list of paths.
	Glob(inspec string) ([]string, error)

	// Read decodes the file at path under Windows-1252. A file that cannot
	// be decoded returns an error matching domain.ErrDecodeFailed; callers
	// skip such files and continue.
	Read(path string) (domain.Document, error)
}
