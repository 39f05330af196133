package corpus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLyricsProvider struct {
	tracks      []int64
	lyrics      map[int64]string
	searchErr   error
	searchCalls int
}

func (p *fakeLyricsProvider) SearchTracks(ctx context.Context, artist string, limit int) ([]int64, error) {
	p.searchCalls++
	if p.searchErr != nil {
		return nil, p.searchErr
	}
	if len(p.tracks) > limit {
		return p.tracks[:limit], nil
	}
	return p.tracks, nil
}

func (p *fakeLyricsProvider) TrackLyrics(ctx context.Context, trackID int64) (string, error) {
	text, ok := p.lyrics[trackID]
	if !ok || text == "" {
		return "", ErrContentNotFound
	}
	return text, nil
}

type fakeQuoteProvider struct {
	sections  []string
	quotes    map[string]string
	searchErr error
}

func (p *fakeQuoteProvider) SearchSections(ctx context.Context, author string) ([]string, error) {
	if p.searchErr != nil {
		return nil, p.searchErr
	}
	return p.sections, nil
}

func (p *fakeQuoteProvider) SectionQuotes(ctx context.Context, author, section string) (string, error) {
	text, ok := p.quotes[section]
	if !ok || text == "" {
		return "", ErrContentNotFound
	}
	return text, nil
}

func TestLyricalSourceBuildsCleanCorpus(t *testing.T) {
	// Five resolvable tracks, each carrying the legal notice and an ellipsis.
	provider := &fakeLyricsProvider{
		tracks: []int64{1, 2, 3, 4, 5},
		lyrics: map[int64]string{
			1: "How you remind me... " + LyricsNotice,
			2: "This is how you remind me " + LyricsNotice,
			3: "Never made it as a wise man... " + LyricsNotice,
			4: "I've been down " + LyricsNotice,
			5: "To the bottom of every bottle... " + LyricsNotice,
		},
	}
	source := NewLyricalSource(provider)

	text, err := source.BuildCorpus(context.Background(), "Nickelback")

	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.NotContains(t, text, LyricsNotice)
	assert.NotContains(t, text, "...")
	assert.Contains(t, text, "How you remind me")
}

func TestLyricalSourceCollectsFiveCandidates(t *testing.T) {
	provider := &fakeLyricsProvider{tracks: []int64{1, 2, 3, 4, 5, 6, 7}}
	source := NewLyricalSource(provider)

	ids, err := source.CollectCandidates(context.Background(), "Nickelback")

	require.NoError(t, err)
	assert.Len(t, ids, 5)
}

func TestLyricalSourceNoCandidates(t *testing.T) {
	source := NewLyricalSource(&fakeLyricsProvider{tracks: nil})

	_, err := source.BuildCorpus(context.Background(), "asdf")

	assert.ErrorIs(t, err, ErrLyricsNotFound)
}

func TestLyricalSourceProviderErrorsRemapped(t *testing.T) {
	// Raw provider failures (unresolvable subject, timeouts) never escape.
	for _, searchErr := range []error{ErrSubjectNotFound, context.DeadlineExceeded, errors.New("connection refused")} {
		source := NewLyricalSource(&fakeLyricsProvider{searchErr: searchErr})

		_, err := source.BuildCorpus(context.Background(), "Nickelback")

		assert.ErrorIs(t, err, ErrLyricsNotFound, "searchErr=%v", searchErr)
	}
}

func TestLyricalSourceAllTracksEmpty(t *testing.T) {
	provider := &fakeLyricsProvider{tracks: []int64{1, 2}, lyrics: map[int64]string{}}
	source := NewLyricalSource(provider)

	_, err := source.BuildCorpus(context.Background(), "Nickelback")

	assert.ErrorIs(t, err, ErrLyricsNotFound)
}

func TestLyricalSourceToleratesPerTrackMisses(t *testing.T) {
	provider := &fakeLyricsProvider{
		tracks: []int64{1, 2, 3},
		lyrics: map[int64]string{2: "still got lyrics"},
	}
	source := NewLyricalSource(provider)

	text, err := source.BuildCorpus(context.Background(), "Nickelback")

	require.NoError(t, err)
	assert.Equal(t, "still got lyrics", text)
}

func TestLiterarySourceSamplesThreeSections(t *testing.T) {
	provider := &fakeQuoteProvider{
		sections: []string{"1", "2", "3", "4", "5"},
		quotes: map[string]string{
			"1": "<li>one</li>", "2": "<li>two</li>", "3": "<li>three</li>",
			"4": "<li>four</li>", "5": "<li>five</li>",
		},
	}
	source := NewLiterarySource(provider)

	sections, err := source.CollectCandidates(context.Background(), "Neil Gaiman")

	require.NoError(t, err)
	assert.Len(t, sections, 3)
}

func TestLiterarySourceBuildsCleanCorpus(t *testing.T) {
	provider := &fakeQuoteProvider{
		sections: []string{"1", "2", "3"},
		quotes: map[string]string{
			"1": "<li>Fairy tales are more than true.</li>",
			"2": "<li>Stories you read at the right age never leave you.</li> Chapter 4",
			"3": "<li>A book is a dream you hold in your hand.</li>",
		},
	}
	source := NewLiterarySource(provider)

	text, err := source.BuildCorpus(context.Background(), "Neil Gaiman")

	require.NoError(t, err)
	assert.NotContains(t, text, "<li>")
	assert.NotContains(t, text, "Chapter")
	assert.Contains(t, text, "Fairy tales are more than true.")
}

func TestLiterarySourceAuthorNotFound(t *testing.T) {
	// Covers the missing page and the missing special characters case; the
	// provider reports both as an unresolved subject.
	source := NewLiterarySource(&fakeQuoteProvider{searchErr: ErrSubjectNotFound})

	_, err := source.BuildCorpus(context.Background(), "Anais Nin")

	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestLiterarySourceAllSectionsEmpty(t *testing.T) {
	provider := &fakeQuoteProvider{sections: []string{"1", "2"}, quotes: map[string]string{}}
	source := NewLiterarySource(provider)

	_, err := source.BuildCorpus(context.Background(), "Neil Gaiman")

	assert.ErrorIs(t, err, ErrAuthorNotFound)
}
