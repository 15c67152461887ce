// Package matcher filters a corpus by a compiled regular expression.
package matcher

import (
	"regexp"

	"go.trai.ch/zerr"
	"gutengrep/internal/core/domain"
)

// Matcher holds a compiled pattern. Matching is substring search: a match
// anywhere in the sentence counts.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a Matcher from pattern. Case-insensitivity is applied by
// prefixing the (?i) flag. A pattern that does not compile fails with
// domain.ErrInvalidPattern.
func Compile(pattern string, ignoreCase bool) (*Matcher, error) {
	p := pattern
	if ignoreCase {
		p = "(?i)" + p
	}

	re, err := regexp.Compile(p)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
	}

	return &Matcher{re: re}, nil
}

// Match returns the sentences the pattern matches, preserving corpus order.
func (m *Matcher) Match(corpus domain.Corpus) domain.Corpus {
	var out domain.Corpus
	for _, s := range corpus {
		if m.re.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}
