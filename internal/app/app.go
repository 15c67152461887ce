// Package app implements the application layer for gutengrep.
package app

import (
	"context"
	"errors"

	"go.trai.ch/zerr"
	"gutengrep/internal/adapters/report"
	"gutengrep/internal/core/domain"
	"gutengrep/internal/core/ports"
	"gutengrep/internal/engine/corrector"
	"gutengrep/internal/engine/matcher"
)

// App represents the main application logic.
type App struct {
	loader    ports.Loader
	segmenter ports.Segmenter
	cache     ports.CorpusCache
	reporter  ports.Reporter
	logger    ports.Logger
	defaults  domain.Defaults
}

// New creates a new App instance.
func New(
	loader ports.Loader,
	segmenter ports.Segmenter,
	cache ports.CorpusCache,
	reporter ports.Reporter,
	log ports.Logger,
	defaults domain.Defaults,
) *App {
	return &App{
		loader:    loader,
		segmenter: segmenter,
		cache:     cache,
		reporter:  reporter,
		logger:    log,
		defaults:  defaults,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Outfile overrides the output path; empty means the configured default.
	Outfile    string
	IgnoreCase bool
	Sort       bool
	Cache      bool
	Correct    bool
}

// Run executes the scan: compile the pattern, obtain the corpus (cache or
// fresh segmentation), match, optionally correct, and report. The pattern
// is validated before any file I/O so misconfiguration never leaves a
// partial output file behind.
func (a *App) Run(ctx context.Context, pattern, inspec string, opts RunOptions) error {
	if inspec == "" && !opts.Cache {
		return domain.ErrNoInput
	}

	m, err := matcher.Compile(pattern, opts.IgnoreCase)
	if err != nil {
		return err
	}

	outfile := opts.Outfile
	if outfile == "" {
		outfile = a.defaults.Outfile
	}

	corpus, err := a.obtainCorpus(ctx, inspec, opts.Cache)
	if err != nil {
		return err
	}
	a.logger.Info(domain.Commafy(len(corpus)) + " sentences found")

	matches := m.Match(corpus)
	a.logger.Info(domain.Commafy(len(matches)) + " sentences matched")

	if opts.Correct {
		matches = corrector.BalanceQuotes(matches)
	}

	if err := a.reporter.Write(outfile, matches); err != nil {
		return err
	}

	if opts.Sort {
		sorted := matches.SortedByLength()
		if err := a.reporter.Write(report.SortedPath(outfile), sorted); err != nil {
			return err
		}
	}

	return nil
}

// obtainCorpus returns the sentence corpus, either from the cache or by
// segmenting every file the inspec resolves to. A supplied inspec is always
// expanded and validated first, so a glob matching nothing is fatal even
// when the cache could answer. With caching requested and a record present,
// the record then wins unconditionally for corpus content: the files are
// not read, even if the inspec differs from the one the record was built
// from.
func (a *App) obtainCorpus(ctx context.Context, inspec string, useCache bool) (domain.Corpus, error) {
	var files []string
	if inspec != "" {
		var err error
		files, err = a.loader.Glob(inspec)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, zerr.With(domain.ErrNoFilesMatched, "inspec", inspec)
		}
	}

	if useCache {
		rec, err := a.cache.Load()
		if err != nil {
			return nil, err
		}
		if rec != nil {
			a.logger.Info("open cache...")
			if inspec != "" && rec.InspecHash != "" && rec.InspecHash != domain.Fingerprint(inspec) {
				a.logger.Warn("cache was built from a different inspec; using cached sentences anyway")
			}
			return domain.Corpus(rec.Sentences), nil
		}
	}

	if inspec == "" {
		return nil, domain.ErrNoInput
	}

	var corpus domain.Corpus
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a.logger.Info(domain.Commafy(i+1) + " / " + domain.Commafy(len(files)))

		doc, err := a.loader.Read(path)
		if err != nil {
			if errors.Is(err, domain.ErrDecodeFailed) {
				a.logger.Warn("skipping " + path + ": not valid Windows-1252")
				continue
			}
			return nil, err
		}

		sents, err := a.segmenter.Segment(doc.Text)
		if err != nil {
			return nil, err
		}
		corpus = append(corpus, sents...)
	}

	a.logger.Info(domain.Commafy(len(corpus)) + " total sentences found")

	if useCache {
		rec := domain.CacheRecord{
			Version:    domain.CacheRecordVersion,
			InspecHash: domain.Fingerprint(inspec),
			Sentences:  corpus,
		}
		if err := a.cache.Save(rec); err != nil {
			return nil, err
		}
	}

	return corpus, nil
}
