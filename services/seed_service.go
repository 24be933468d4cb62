package services

import (
	"fmt"
	"log"
	"time"

	"github.com/syahrilTGR/CaloriLens/models"
)

// SeedService uploads five days of dummy meal logs for one test user.
type SeedService struct {
	auth *AuthService
	db   *FirestoreREST
}

func NewSeedService(auth *AuthService, db *FirestoreREST) *SeedService {
	return &SeedService{auth: auth, db: db}
}

// Run performs the whole seeding pass. Setup failures (sign-in, catalog)
// abort the run; individual write failures are printed and skipped.
func (s *SeedService) Run(email, password, catalogFile string) error {
	log.Printf("Signing in as %s...", email)
	session, err := s.auth.SignIn(email, password)
	if err != nil {
		return err
	}
	log.Printf("Signed in, uid: %s", session.UserID)
	if exp, err := TokenExpiry(session.IDToken); err == nil {
		log.Printf("Token valid until %s", exp.UTC().Format(time.RFC3339))
	}

	catalog, err := models.LoadCatalog(catalogFile)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d foods from %s", len(catalog), catalogFile)

	plan, err := models.DummyMealPlan(time.Now().UTC(), catalog)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("users/%s/mealLogs", session.UserID)
	uploaded, failed := 0, 0
	for _, meal := range plan {
		if err := s.db.CreateDocument(session, path, MealLogFields(meal)); err != nil {
			failed++
			log.Printf("  [FAIL] meal %s %s: %v", meal.Date, meal.Timestamp.Format("15:04"), err)
			continue
		}
		uploaded++
		log.Printf("  [OK] meal %s %s (%.0f kcal)", meal.Date, meal.Timestamp.Format("15:04"), meal.TotalCalories)
	}

	log.Printf("Done: %d meal logs uploaded, %d failed.", uploaded, failed)
	return nil
}
