package corpus

import (
	"context"
	"strings"
)

const lyricalSampleSize = 5

// LyricalSource acquires song lyrics for a musician: it resolves up to five
// candidate tracks, retrieves each lyric body, concatenates what it got, and
// cleans the result. Provider failures never escape raw; every failure path
// ends in ErrLyricsNotFound.
type LyricalSource struct {
	provider LyricsProvider
	sample   int
}

func NewLyricalSource(provider LyricsProvider) *LyricalSource {
	return &LyricalSource{provider: provider, sample: lyricalSampleSize}
}

func (s *LyricalSource) Kind() Kind {
	return KindLyrical
}

// CollectCandidates resolves up to five track ids with non-empty lyrics for
// the musician. Zero candidates, an unresolvable artist, or a timed-out
// provider call all yield ErrLyricsNotFound.
func (s *LyricalSource) CollectCandidates(ctx context.Context, subject string) ([]int64, error) {
	ids, err := s.provider.SearchTracks(ctx, subject, s.sample)
	if err != nil {
		return nil, ErrLyricsNotFound
	}
	if len(ids) == 0 {
		return nil, ErrLyricsNotFound
	}
	if len(ids) > s.sample {
		ids = ids[:s.sample]
	}
	return ids, nil
}

// BuildCorpus retrieves lyrics for each candidate track, tolerating per-track
// misses, and returns the cleaned concatenation. An empty concatenation means
// every track failed and escalates to ErrLyricsNotFound.
func (s *LyricalSource) BuildCorpus(ctx context.Context, subject string) (string, error) {
	ids, err := s.CollectCandidates(ctx, subject)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		text, err := s.provider.TrackLyrics(ctx, id)
		if err != nil || text == "" {
			continue
		}
		parts = append(parts, text)
	}

	joined := strings.Join(parts, "\n")
	if joined == "" {
		return "", ErrLyricsNotFound
	}
	return Clean(joined, KindLyrical), nil
}
