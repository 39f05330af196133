package main

import (
	"log"

	"book-duets-be/internal/config"
	"book-duets-be/internal/model"
	"book-duets-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := db.AutoMigrate(&model.SuggestedPairing{}); err != nil {
		log.Panicf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
