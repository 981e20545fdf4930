package app

import (
	"log"

	"noorcms/internal/config"
	"noorcms/internal/database"
	"noorcms/internal/repository"
	"noorcms/internal/service"
	"noorcms/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize upload storage: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, services
}
