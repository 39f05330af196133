package contract

import (
	"context"

	"book-duets-be/internal/entity"
)

type SuggestedPairingRepository interface {
	Create(ctx context.Context, pairing *entity.SuggestedPairing) error
	Count(ctx context.Context) (int64, error)
	FindByOffset(ctx context.Context, offset int64) (*entity.SuggestedPairing, error)
}
