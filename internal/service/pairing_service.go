package service

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"

	"book-duets-be/internal/dto"
	"book-duets-be/internal/pkg/logger"
	"book-duets-be/internal/repository/contract"
	"book-duets-be/pkg/textgen"
)

// ErrNoPairings means the suggested_pairings table has not been seeded.
var ErrNoPairings = errors.New("no suggested pairings available")

type IPairingService interface {
	RandomPairing(ctx context.Context) (*dto.PairingResponse, error)
}

type pairingService struct {
	repo            contract.SuggestedPairingRepository
	dictionariesDir string
	newModel        func() textgen.Model
	logger          logger.ILogger
}

func NewPairingService(
	repo contract.SuggestedPairingRepository,
	dictionariesDir string,
	newModel func() textgen.Model,
	sysLogger logger.ILogger,
) IPairingService {
	return &pairingService{
		repo:            repo,
		dictionariesDir: dictionariesDir,
		newModel:        newModel,
		logger:          sysLogger,
	}
}

// RandomPairing picks a seeded pairing at a random offset, trains an
// ephemeral model on its persisted corpus, and emits three sentences.
func (s *pairingService) RandomPairing(ctx context.Context) (*dto.PairingResponse, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoPairings
	}

	pairing, err := s.repo.FindByOffset(ctx, rand.Int63n(count))
	if err != nil {
		return nil, err
	}
	if pairing == nil {
		return nil, ErrNoPairings
	}

	text, err := os.ReadFile(filepath.Join(s.dictionariesDir, pairing.PersistedDictionary))
	if err != nil {
		s.logger.Error("Pairing", "persisted corpus unreadable", map[string]interface{}{
			"dictionary": pairing.PersistedDictionary, "error": err.Error(),
		})
		return nil, err
	}

	model := s.newModel()
	defer model.Clear()
	model.Train(string(text))

	return &dto.PairingResponse{
		Author:     pairing.Author,
		Musician:   pairing.Musician,
		NewsSource: pairing.NewsSource,
		Mashup:     model.Sentences(mashupSentences),
	}, nil
}
