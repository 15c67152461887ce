// Package report writes matched sentences as word-wrapped text blocks.
package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"go.trai.ch/zerr"
	"gutengrep/internal/core/domain"
)

// Writer implements ports.Reporter. Width and indentation come from the run
// defaults (gutengrep.yaml or builtin).
type Writer struct {
	width  int
	indent int
}

// NewWriter creates a Writer wrapping at width columns with the given
// indentation.
func NewWriter(width, indentWidth int) *Writer {
	if width <= 0 {
		width = domain.BuiltinDefaults().Width
	}
	return &Writer{width: width, indent: indentWidth}
}

// Write formats each sentence as a word-wrapped block followed by a blank
// line and writes the result to path as UTF-8.
func (w *Writer) Write(path string, sentences []string) error {
	var buf bytes.Buffer
	for _, s := range sentences {
		buf.WriteString(w.format(s))
		buf.WriteString("\n\n")
	}

	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}

	return nil
}

// format collapses embedded CR-LF pairs to a single space, normalizes runs
// of whitespace, and wraps to the configured width.
func (w *Writer) format(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.Join(strings.Fields(s), " ")

	wrapped := wordwrap.String(s, w.width)
	if w.indent > 0 {
		wrapped = indent.String(wrapped, uint(w.indent)) //nolint:gosec // indent is a small config value
	}
	return wrapped
}

// SortedPath derives the sibling output path for the length-sorted pass by
// inserting "-sort" before the extension: output.log -> output-sort.log.
func SortedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-sort" + ext
}
