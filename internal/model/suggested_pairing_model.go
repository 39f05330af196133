package model

import (
	"time"

	"github.com/google/uuid"
)

type SuggestedPairing struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Author              string    `gorm:"not null"`
	Musician            string    `gorm:"not null"`
	NewsSource          string
	PersistedDictionary string
	CreatedAt           time.Time
}

func (SuggestedPairing) TableName() string {
	return "suggested_pairings"
}
