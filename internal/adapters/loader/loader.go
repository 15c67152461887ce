// Package loader resolves input file patterns and reads Project Gutenberg
// plain-text files.
package loader

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/charmap"
	"gutengrep/internal/core/domain"
	"gutengrep/internal/core/ports"
)

// Loader implements ports.Loader for Windows-1252 encoded text files.
type Loader struct {
	logger ports.Logger
}

// New creates a new Loader.
func New(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Glob expands an input file pattern into an ordered list of paths.
// filepath.Glob returns paths in lexical order, so the corpus order is
// deterministic for a fixed inspec.
func (l *Loader) Glob(inspec string) ([]string, error) {
	files, err := filepath.Glob(inspec)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "malformed inspec pattern"), "inspec", inspec)
	}
	return files, nil
}

// Read decodes the file at path under Windows-1252. Decoding is strict: a
// byte with no Windows-1252 assignment fails the whole file with
// domain.ErrDecodeFailed, and no partial text is returned.
func (l *Loader) Read(path string) (domain.Document, error) {
	l.logger.Info("open " + path + "...")

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	text, ok := decodeWindows1252(raw)
	if !ok {
		return domain.Document{}, zerr.With(domain.ErrDecodeFailed, "path", path)
	}

	return domain.Document{Path: path, Text: text}, nil
}

// decodeWindows1252 maps raw bytes to UTF-8. The five bytes Windows-1252
// leaves unassigned decode to utf8.RuneError in the charmap table, which is
// how a bad byte is detected here.
func decodeWindows1252(raw []byte) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		r := charmap.Windows1252.DecodeByte(c)
		if r == utf8.RuneError {
			return "", false
		}
		b.WriteRune(r)
	}
	return b.String(), true
}
