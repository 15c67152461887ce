// Package corrector repairs quotation marks that the segmenter split
// across two sentences.
package corrector

import (
	"strings"

	"gutengrep/internal/core/domain"
)

// BalanceQuotes applies per-sentence quote repairs in place and returns the
// slice. Both checks evaluate the sentence text as segmented, so a repair
// from the second check supersedes one made by the first. A sentence that
// is a single quote character both starts and ends with it and is left
// alone. The repair is best-effort: nested or multiple quotation scopes are
// not validated.
func BalanceQuotes(sentences domain.Corpus) domain.Corpus {
	for i, s := range sentences {
		switch {
		case strings.HasPrefix(s, `"`) && !strings.HasSuffix(s, `"`):
			sentences[i] = s + `"`
		case strings.HasPrefix(s, `'`) && !strings.HasSuffix(s, `'`):
			sentences[i] = s + `'`
		}

		switch {
		case !strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`):
			sentences[i] = `"` + s
		case !strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`):
			sentences[i] = `'` + s
		}
	}
	return sentences
}
