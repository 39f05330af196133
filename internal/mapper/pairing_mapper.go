package mapper

import (
	"book-duets-be/internal/entity"
	"book-duets-be/internal/model"
)

type PairingMapper struct{}

func NewPairingMapper() *PairingMapper {
	return &PairingMapper{}
}

func (m *PairingMapper) ToModel(e *entity.SuggestedPairing) *model.SuggestedPairing {
	return &model.SuggestedPairing{
		Id:                  e.Id,
		Author:              e.Author,
		Musician:            e.Musician,
		NewsSource:          e.NewsSource,
		PersistedDictionary: e.PersistedDictionary,
		CreatedAt:           e.CreatedAt,
	}
}

func (m *PairingMapper) ToEntity(p *model.SuggestedPairing) *entity.SuggestedPairing {
	return &entity.SuggestedPairing{
		Id:                  p.Id,
		Author:              p.Author,
		Musician:            p.Musician,
		NewsSource:          p.NewsSource,
		PersistedDictionary: p.PersistedDictionary,
		CreatedAt:           p.CreatedAt,
	}
}
