// Package domain contains core domain types for corpus scanning.
package domain

import (
	"sort"
	"strconv"
	"unicode/utf8"
)

// Document is one input file and its decoded text. It exists only while the
// file is being read and segmented.
type Document struct {
	Path string
	Text string
}

// Corpus is the ordered sequence of sentences extracted from all input
// documents in one run, in file-then-within-file order.
type Corpus []string

// SortedByLength returns a new corpus sorted by ascending sentence length,
// counted in characters rather than bytes so curly quotes and accents do
// not skew the order. Sentences of equal length keep their original
// relative order.
func (c Corpus) SortedByLength() Corpus {
	out := make(Corpus, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) < utf8.RuneCountInString(out[j])
	})
	return out
}

// Commafy formats n with thousands separators for progress output.
func Commafy(n int) string {
	s := strconv.Itoa(n)
	start := 0
	if n < 0 {
		start = 1
	}
	for i := len(s) - 3; i > start; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
