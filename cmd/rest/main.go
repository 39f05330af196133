package main

import (
	"log"

	"book-duets-be/internal/bootstrap"
	"book-duets-be/internal/config"
	"book-duets-be/internal/server"
	"book-duets-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
