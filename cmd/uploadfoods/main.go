package main

import (
	"context"
	"log"

	"github.com/syahrilTGR/CaloriLens/config"
	"github.com/syahrilTGR/CaloriLens/models"
	"github.com/syahrilTGR/CaloriLens/services"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	credFile, err := services.ResolveCredentialsFile(".", cfg.ServiceAccountFile)
	if err != nil {
		log.Fatalf("Service account key not found: %v", err)
	}

	client, err := services.NewFirestoreAdmin(ctx, credFile)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	log.Println("Connected to Firestore.")

	catalog, err := models.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Read %d foods from %s.", len(catalog), cfg.CatalogFile)

	log.Println("Uploading foods one by one...")
	count := services.UploadCatalog(ctx, services.FoodsCollection(client), catalog)
	log.Printf("Done: %d foods uploaded to the 'foods' collection.", count)
}
