package corpus

import (
	"context"
	"math/rand"
	"strings"
)

const literarySampleSize = 3

// LiterarySource acquires quotations for an author from the quote provider:
// it samples three quote sections at random, retrieves each section body,
// concatenates, and cleans. Every failure path ends in ErrAuthorNotFound,
// including an author page that only exists under a differently-accented name.
type LiterarySource struct {
	provider QuoteProvider
	sample   int
}

func NewLiterarySource(provider QuoteProvider) *LiterarySource {
	return &LiterarySource{provider: provider, sample: literarySampleSize}
}

func (s *LiterarySource) Kind() Kind {
	return KindLiterary
}

// CollectCandidates picks up to three random quote sections for the author.
func (s *LiterarySource) CollectCandidates(ctx context.Context, subject string) ([]string, error) {
	sections, err := s.provider.SearchSections(ctx, subject)
	if err != nil {
		return nil, ErrAuthorNotFound
	}
	if len(sections) == 0 {
		return nil, ErrAuthorNotFound
	}

	picked := make([]string, len(sections))
	copy(picked, sections)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > s.sample {
		picked = picked[:s.sample]
	}
	return picked, nil
}

// BuildCorpus retrieves each sampled section, tolerating per-section misses,
// and returns the cleaned concatenation. All sections failing escalates to
// ErrAuthorNotFound.
func (s *LiterarySource) BuildCorpus(ctx context.Context, subject string) (string, error) {
	sections, err := s.CollectCandidates(ctx, subject)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		text, err := s.provider.SectionQuotes(ctx, subject, section)
		if err != nil || text == "" {
			continue
		}
		parts = append(parts, text)
	}

	joined := strings.Join(parts, "\n")
	if joined == "" {
		return "", ErrAuthorNotFound
	}
	return Clean(joined, KindLiterary), nil
}
