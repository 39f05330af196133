package entity

import (
	"time"

	"github.com/google/uuid"
)

// SuggestedPairing is a pre-seeded author/musician duo with a reference to a
// persisted corpus the random-pairing flow trains on.
type SuggestedPairing struct {
	Id                  uuid.UUID
	Author              string
	Musician            string
	NewsSource          string
	PersistedDictionary string
	CreatedAt           time.Time
}
