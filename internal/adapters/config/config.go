// Package config loads optional run defaults from gutengrep.yaml in the
// working directory.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
	"gutengrep/internal/core/domain"
)

// Load reads gutengrep.yaml from cwd and merges it over the builtin
// defaults. A missing file is not an error; flags override whatever is
// returned here.
func Load(cwd string) (domain.Defaults, error) {
	defaults := domain.BuiltinDefaults()

	path := filepath.Join(cwd, domain.ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults, nil
		}
		return domain.Defaults{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file domain.Defaults
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Defaults{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Outfile != "" {
		defaults.Outfile = file.Outfile
	}
	if file.Width > 0 {
		defaults.Width = file.Width
	}
	if file.Indent > 0 {
		defaults.Indent = file.Indent
	}
	defaults.JSON = file.JSON

	return defaults, nil
}
