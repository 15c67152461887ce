package domain

import "io/fs"

// File and directory permissions for artifacts written by gutengrep.
const (
	FilePerm fs.FileMode = 0o644
	DirPerm  fs.FileMode = 0o755
)

// DefaultCacheFile is the fixed, non-configurable cache location relative to
// the working directory.
const DefaultCacheFile = "sentences_cache.json"

// ConfigFileName is the optional per-directory defaults file.
const ConfigFileName = "gutengrep.yaml"

// Defaults are run settings that gutengrep.yaml may override and flags may
// override again.
type Defaults struct {
	Outfile string `yaml:"outfile"`
	Width   int    `yaml:"width"`
	Indent  int    `yaml:"indent"`
	// JSON switches log output from pretty to JSON lines.
	JSON bool `yaml:"json"`
}

// BuiltinDefaults returns the settings used when no config file is present.
func BuiltinDefaults() Defaults {
	return Defaults{
		Outfile: "output.log",
		Width:   70,
		Indent:  0,
	}
}
