package main

import (
	"log"

	"github.com/syahrilTGR/CaloriLens/config"
	"github.com/syahrilTGR/CaloriLens/services"
)

func main() {
	cfg := config.Load()

	auth := services.NewAuthService(cfg.APIKey)
	db := services.NewFirestoreREST(cfg.ProjectID)
	seeder := services.NewSeedService(auth, db)

	if err := seeder.Run(cfg.Email, cfg.Password, cfg.CatalogFile); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
