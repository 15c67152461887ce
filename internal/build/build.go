// Package build holds version metadata injected at link time.
package build

// Populated via -ldflags "-X gutengrep/internal/build.Version=..." at
// release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
