package service

import (
	"context"
	"sync"

	"book-duets-be/internal/dto"
	"book-duets-be/internal/pkg/logger"
	"book-duets-be/pkg/corpus"
	"book-duets-be/pkg/filter"
	"book-duets-be/pkg/textgen"
)

const mashupSentences = 3

// CorpusBuilder is the slice of the corpus pipeline this service consumes.
type CorpusBuilder interface {
	Build(ctx context.Context, subject string, kind corpus.Kind) (string, error)
}

type IDuetService interface {
	CustomDuet(ctx context.Context, req *dto.CustomDuetRequest) (*dto.DuetResponse, error)
}

type duetService struct {
	builder  CorpusBuilder
	newModel func() textgen.Model
	filter   *filter.Filter
	logger   logger.ILogger
}

func NewDuetService(
	builder CorpusBuilder,
	newModel func() textgen.Model,
	langFilter *filter.Filter,
	sysLogger logger.ILogger,
) IDuetService {
	return &duetService{
		builder:  builder,
		newModel: newModel,
		filter:   langFilter,
		logger:   sysLogger,
	}
}

// CustomDuet builds both corpora concurrently, joins, then trains an
// ephemeral model and emits three filtered sentences. Mashups are produced
// fresh on every request and never cached.
func (s *duetService) CustomDuet(ctx context.Context, req *dto.CustomDuetRequest) (*dto.DuetResponse, error) {
	musician := corpus.NormalizeSubject(req.Musician)
	author := corpus.NormalizeSubject(req.Author)

	var wg sync.WaitGroup
	var lyrical, literary string
	var lyricalErr, literaryErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		lyrical, lyricalErr = s.builder.Build(ctx, musician, corpus.KindLyrical)
	}()
	go func() {
		defer wg.Done()
		literary, literaryErr = s.builder.Build(ctx, author, corpus.KindLiterary)
	}()
	wg.Wait()

	if lyricalErr != nil {
		s.logger.Warn("Duet", "lyrical corpus build failed", map[string]interface{}{
			"musician": musician, "error": lyricalErr.Error(),
		})
		return nil, lyricalErr
	}
	if literaryErr != nil {
		s.logger.Warn("Duet", "literary corpus build failed", map[string]interface{}{
			"author": author, "error": literaryErr.Error(),
		})
		return nil, literaryErr
	}

	mashup := s.generate(literary, lyrical)

	level := req.FilterLevel
	if level == "" {
		level = filter.LevelNone
	}
	for i, sentence := range mashup {
		mashup[i] = s.filter.Apply(sentence, level)
	}

	s.logger.Info("Duet", "mashup generated", map[string]interface{}{
		"musician": musician, "author": author, "sentences": len(mashup),
	})
	return &dto.DuetResponse{
		Author:   author,
		Musician: musician,
		Mashup:   mashup,
	}, nil
}

// generate trains an ephemeral model, literary text first, and guarantees the
// model is cleared on every exit path.
func (s *duetService) generate(literary, lyrical string) []string {
	model := s.newModel()
	defer model.Clear()

	model.Train(literary)
	model.Train(lyrical)
	return model.Sentences(mashupSentences)
}
