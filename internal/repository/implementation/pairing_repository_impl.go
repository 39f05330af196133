package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"book-duets-be/internal/entity"
	"book-duets-be/internal/mapper"
	"book-duets-be/internal/model"
	"book-duets-be/internal/repository/contract"
)

type SuggestedPairingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PairingMapper
}

func NewSuggestedPairingRepository(db *gorm.DB) contract.SuggestedPairingRepository {
	return &SuggestedPairingRepositoryImpl{
		db:     db,
		mapper: mapper.NewPairingMapper(),
	}
}

func (r *SuggestedPairingRepositoryImpl) Create(ctx context.Context, pairing *entity.SuggestedPairing) error {
	m := r.mapper.ToModel(pairing)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pairing = *r.mapper.ToEntity(m)
	return nil
}

func (r *SuggestedPairingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.SuggestedPairing{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByOffset returns the pairing at a row offset. Row ids are not contiguous,
// so random selection happens by offset against the current count.
func (r *SuggestedPairingRepositoryImpl) FindByOffset(ctx context.Context, offset int64) (*entity.SuggestedPairing, error) {
	var m model.SuggestedPairing
	err := r.db.WithContext(ctx).
		Order("created_at").
		Offset(int(offset)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
