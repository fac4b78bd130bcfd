package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

// Report summarizes one extraction run.
type Report struct {
	Texts   int
	Unique  int
	Created int
	Elapsed time.Duration
}

// Extractor scans every text source, tokenizes it and inserts the tokens
// missing from the word table. Existing words are never modified.
type Extractor struct {
	words   repository.WordRepository
	sources []repository.TextSource
	logger  *logrus.Logger
}

func NewExtractor(words repository.WordRepository, logger *logrus.Logger, sources ...repository.TextSource) *Extractor {
	return &Extractor{words: words, sources: sources, logger: logger}
}

// Run executes one extraction. Sources are read to completion before any
// write so a single-connection store is never asked to read and write at once.
// A text that cannot be decoded aborts the run.
func (e *Extractor) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	var report Report

	seen := make(map[string]struct{})
	for _, src := range e.sources {
		err := src.ScanTexts(ctx, func(text string) error {
			report.Texts++
			for _, token := range Tokenize(text) {
				seen[token] = struct{}{}
			}
			return ctx.Err()
		})
		if err != nil {
			return report, fmt.Errorf("scan texts: %w", err)
		}
	}
	report.Unique = len(seen)

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		created, err := e.words.CreateIfAbsent(ctx, entity.NewWord(token))
		switch {
		case errors.Is(err, entity.ErrConstraintViolation):
			continue
		case err != nil:
			return report, fmt.Errorf("store word %q: %w", token, err)
		case created:
			report.Created++
		}
	}
	report.Elapsed = time.Since(start)

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"texts":   report.Texts,
			"unique":  report.Unique,
			"created": report.Created,
			"elapsed": report.Elapsed.String(),
		}).Info("vocabulary extracted")
	}
	return report, nil
}
