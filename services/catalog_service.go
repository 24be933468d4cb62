package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/syahrilTGR/CaloriLens/models"
)

// DocWriter is the slice of the Firestore client the uploader needs.
type DocWriter interface {
	Set(ctx context.Context, id string, data interface{}) error
}

// ResolveCredentialsFile finds the Admin SDK key in dir: the configured name
// first, then any *firebase-adminsdk*.json, then serviceAccountKey.json.
func ResolveCredentialsFile(dir, name string) (string, error) {
	exact := filepath.Join(dir, name)
	if fileExists(exact) {
		return exact, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*firebase-adminsdk*.json"))
	if err == nil && len(matches) > 0 {
		log.Printf("Using service account key: %s", filepath.Base(matches[0]))
		return matches[0], nil
	}

	fallback := filepath.Join(dir, "serviceAccountKey.json")
	if fileExists(fallback) {
		return fallback, nil
	}

	return "", fmt.Errorf("no service account key file found in %s", dir)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// NewFirestoreAdmin initializes the Admin SDK from a service account key.
func NewFirestoreAdmin(ctx context.Context, credFile string) (*firestore.Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firestore client: %w", err)
	}
	return client, nil
}

type foodsCollection struct {
	col *firestore.CollectionRef
}

func (c foodsCollection) Set(ctx context.Context, id string, data interface{}) error {
	_, err := c.col.Doc(id).Set(ctx, data)
	return err
}

// FoodsCollection wraps the shared "foods" collection for UploadCatalog.
func FoodsCollection(client *firestore.Client) DocWriter {
	return foodsCollection{col: client.Collection("foods")}
}

// foodDoc matches the document shape the mobile app reads.
type foodDoc struct {
	Name     string  `firestore:"name"`
	Proteins float64 `firestore:"proteins"`
	Fat      float64 `firestore:"fat"`
	Carbs    float64 `firestore:"carbs"`
}

// UploadCatalog writes every food as its own document, keyed by catalog id,
// one request per entry. Per-entry failures are printed and skipped; the
// returned count holds only successful writes.
func UploadCatalog(ctx context.Context, w DocWriter, catalog []models.Food) int {
	count := 0
	total := len(catalog)
	for _, f := range catalog {
		doc := foodDoc{Name: f.Name, Proteins: f.Proteins, Fat: f.Fat, Carbs: f.Carbs}
		if err := w.Set(ctx, f.ID, doc); err != nil {
			log.Printf("  failed to upload %s: %v", f.ID, err)
			continue
		}
		count++
		log.Printf("  [%d/%d] uploaded: %s", count, total, f.ID)
	}
	return count
}
