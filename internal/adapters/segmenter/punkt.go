// Package segmenter splits document text into sentences using the Punkt
// sentence-boundary model.
package segmenter

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
	"go.trai.ch/zerr"
	"gutengrep/internal/core/domain"
	"gutengrep/internal/core/ports"
)

// englishTraining is the embedded Punkt training data asset.
const englishTraining = "data/english.json"

// Punkt implements ports.Segmenter backed by the embedded English Punkt
// training data. The tokenizer is built on first use and reused for the
// process lifetime; it is read-only after initialization.
type Punkt struct {
	logger ports.Logger

	once      sync.Once
	tokenizer *sentences.DefaultSentenceTokenizer
	initErr   error
}

// New creates a new Punkt segmenter. The model is not loaded until the
// first Segment call, so cache-hit runs never pay for it.
func New(logger ports.Logger) *Punkt {
	return &Punkt{logger: logger}
}

// Segment returns the sentences of text in document order.
func (p *Punkt) Segment(text string) ([]string, error) {
	p.logger.Info("tokenize...")

	p.once.Do(p.loadModel)
	if p.initErr != nil {
		return nil, p.initErr
	}

	raw := p.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}

	p.logger.Info(domain.Commafy(len(out)) + " sentences found")

	return out, nil
}

func (p *Punkt) loadModel() {
	b, err := sentencesdata.Asset(englishTraining)
	if err != nil {
		p.initErr = zerr.Wrap(err, domain.ErrModelLoadFailed.Error())
		return
	}

	training, err := sentences.LoadTraining(b)
	if err != nil {
		p.initErr = zerr.Wrap(err, domain.ErrModelLoadFailed.Error())
		return
	}

	p.tokenizer = sentences.NewSentenceTokenizer(training)
}
