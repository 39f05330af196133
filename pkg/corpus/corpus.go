// Package corpus implements the acquisition pipeline that turns unreliable
// external text sources into clean, cached corpora: acquire, clean, cache,
// expire, and log build frequency.
package corpus

import (
	"context"
	"time"
)

// Kind selects the provider, the cleaning rules, and the error name for a corpus.
type Kind string

const (
	KindLyrical  Kind = "lyrical"
	KindLiterary Kind = "literary"
)

// LogName returns the sorted-set name that tracks build counts for this kind.
func (k Kind) LogName() string {
	if k == KindLyrical {
		return "Musicians Log"
	}
	return "Authors Log"
}

// Cache is the durable key-value store holding cleaned corpus text per subject.
// Keys must already be normalized (see NormalizeSubject). Expired entries are
// observably identical to entries that were never built.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, text string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

// BuildLog is the per-kind ranking of subject to cumulative cache-miss build count.
type BuildLog interface {
	Incr(ctx context.Context, log, member string) error
	Score(ctx context.Context, log, member string) (float64, bool, error)
}

// Source builds a cleaned corpus for a subject of one kind.
type Source interface {
	Kind() Kind
	BuildCorpus(ctx context.Context, subject string) (string, error)
}

// LyricsProvider is the lyrics search/retrieval capability consumed by the
// lyrical source. Implementations report ErrSubjectNotFound when the artist
// cannot be resolved and ErrContentNotFound when one track has no lyrics.
type LyricsProvider interface {
	SearchTracks(ctx context.Context, artist string, limit int) ([]int64, error)
	TrackLyrics(ctx context.Context, trackID int64) (string, error)
}

// QuoteProvider is the quote search/retrieval capability consumed by the
// literary source. An unresolvable author identity (missing page, missing
// special characters in the name) is reported as ErrSubjectNotFound.
type QuoteProvider interface {
	SearchSections(ctx context.Context, author string) ([]string, error)
	SectionQuotes(ctx context.Context, author, section string) (string, error)
}
