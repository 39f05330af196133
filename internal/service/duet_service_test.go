package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-duets-be/internal/dto"
	"book-duets-be/pkg/corpus"
	"book-duets-be/pkg/filter"
	"book-duets-be/pkg/textgen"
)

type fakeBuilder struct {
	corpora map[corpus.Kind]string
	errs    map[corpus.Kind]error
	seen    map[corpus.Kind]string
}

func (f *fakeBuilder) Build(ctx context.Context, subject string, kind corpus.Kind) (string, error) {
	if f.seen == nil {
		f.seen = make(map[corpus.Kind]string)
	}
	f.seen[kind] = subject
	if err := f.errs[kind]; err != nil {
		return "", err
	}
	return f.corpora[kind], nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestService(builder CorpusBuilder) IDuetService {
	return NewDuetService(builder, textgen.NewEphemeralModel, filter.New(nil), nopLogger{})
}

func TestCustomDuetGeneratesThreeSentences(t *testing.T) {
	builder := &fakeBuilder{corpora: map[corpus.Kind]string{
		corpus.KindLiterary: "All children grow up. All children know the island. The island was always there.",
		corpus.KindLyrical:  "I want to fly away\nFly away with me\nI want to see the island",
	}}
	svc := newTestService(builder)

	res, err := svc.CustomDuet(context.Background(), &dto.CustomDuetRequest{
		Musician: "Feist", Author: "J. M. Barrie", FilterLevel: "none",
	})

	require.NoError(t, err)
	assert.Equal(t, "J. M. Barrie", res.Author)
	assert.Equal(t, "Feist", res.Musician)
	assert.Len(t, res.Mashup, 3)
	for _, sentence := range res.Mashup {
		assert.NotEmpty(t, sentence)
		assert.NotContains(t, sentence, corpus.LyricsNotice)
	}
}

func TestCustomDuetNormalizesSubjects(t *testing.T) {
	builder := &fakeBuilder{corpora: map[corpus.Kind]string{
		corpus.KindLiterary: "Quotes here. More quotes here.",
		corpus.KindLyrical:  "Lyrics here\nMore lyrics here",
	}}
	svc := newTestService(builder)

	res, err := svc.CustomDuet(context.Background(), &dto.CustomDuetRequest{
		Musician: "Sleater_Kinney", Author: "Neil_Gaiman",
	})

	require.NoError(t, err)
	assert.Equal(t, "Neil Gaiman", res.Author)
	assert.Equal(t, "Sleater Kinney", res.Musician)
	assert.Equal(t, "Neil Gaiman", builder.seen[corpus.KindLiterary])
	assert.Equal(t, "Sleater Kinney", builder.seen[corpus.KindLyrical])
}

func TestCustomDuetPropagatesLyricsNotFound(t *testing.T) {
	builder := &fakeBuilder{
		corpora: map[corpus.Kind]string{corpus.KindLiterary: "Quotes here."},
		errs:    map[corpus.Kind]error{corpus.KindLyrical: corpus.ErrLyricsNotFound},
	}
	svc := newTestService(builder)

	_, err := svc.CustomDuet(context.Background(), &dto.CustomDuetRequest{
		Musician: "asdf", Author: "Neil Gaiman",
	})

	assert.ErrorIs(t, err, corpus.ErrLyricsNotFound)
}

func TestCustomDuetPropagatesAuthorNotFound(t *testing.T) {
	builder := &fakeBuilder{
		corpora: map[corpus.Kind]string{corpus.KindLyrical: "Lyrics here"},
		errs:    map[corpus.Kind]error{corpus.KindLiterary: corpus.ErrAuthorNotFound},
	}
	svc := newTestService(builder)

	_, err := svc.CustomDuet(context.Background(), &dto.CustomDuetRequest{
		Musician: "Clint Mansell", Author: "Gregory Maguire",
	})

	assert.ErrorIs(t, err, corpus.ErrAuthorNotFound)
}

func TestCustomDuetAppliesLanguageFilter(t *testing.T) {
	builder := &fakeBuilder{corpora: map[corpus.Kind]string{
		corpus.KindLiterary: "get the fuck outta here. get the fuck outta here.",
		corpus.KindLyrical:  "get the fuck outta here\nget the fuck outta here",
	}}
	svc := newTestService(builder)

	res, err := svc.CustomDuet(context.Background(), &dto.CustomDuetRequest{
		Musician: "Feist", Author: "Neil Gaiman", FilterLevel: "hi",
	})

	require.NoError(t, err)
	joined := strings.Join(res.Mashup, " ")
	assert.NotContains(t, joined, "fuck")
	assert.Contains(t, joined, filter.Mask)
}
