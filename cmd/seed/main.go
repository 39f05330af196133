package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"book-duets-be/internal/config"
	"book-duets-be/internal/entity"
	"book-duets-be/internal/repository/implementation"
	"book-duets-be/pkg/database"
)

// Seeds the suggested pairings the random-pairing endpoint draws from. Each
// persisted dictionary is a pre-built corpus text file under DICTIONARIES_DIR.
var pairings = []entity.SuggestedPairing{
	{Author: "Neil Gaiman", Musician: "Nickelback", NewsSource: "The Guardian", PersistedDictionary: "gaiman_nickelback.txt"},
	{Author: "Octavia Butler", Musician: "Sleater Kinney", NewsSource: "NPR", PersistedDictionary: "butler_sleater_kinney.txt"},
	{Author: "J. M. Barrie", Musician: "Feist", NewsSource: "The Atlantic", PersistedDictionary: "barrie_feist.txt"},
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	repo := implementation.NewSuggestedPairingRepository(db)
	ctx := context.Background()

	for i := range pairings {
		pairings[i].Id = uuid.New()
		pairings[i].CreatedAt = time.Now()
		if err := repo.Create(ctx, &pairings[i]); err != nil {
			log.Printf("Failed to seed pairing %s / %s: %v", pairings[i].Author, pairings[i].Musician, err)
			continue
		}
		log.Printf("Seeded pairing: %s / %s", pairings[i].Author, pairings[i].Musician)
	}
}
