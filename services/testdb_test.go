package services_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/neimasilk/healthycoaching-id-sub000/config"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

// newTestDB opens a throwaway sqlite file and migrates the full schema.
// The alert bus is re-pointed at it so emitted alerts land in this test's
// database rather than a previous test's.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	services.InitAlertDeps(db, services.NewRealtimeHub())
	return db
}

func seedUser(t *testing.T, db *gorm.DB, target float64) *models.User {
	t.Helper()
	user := &models.User{
		Email:              "tester@example.com",
		Password:           "not-a-real-hash",
		FullName:           "Tester",
		DailyCalorieTarget: target,
		Diet:               string(nutrition.DietNone),
		Language:           "id",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// baseFood returns a valid nationwide catalog entry tests mutate as needed.
// The default portion weighs 100 g so scaled values equal the per-100g row.
func baseFood(id, name string) nutrition.FoodItem {
	return nutrition.FoodItem{
		ID:       id,
		Name:     name,
		Category: nutrition.CategorySideDish,
		Per100g: nutrition.Nutrients{
			Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3, Fiber: 0.4,
			SodiumMg: 1, SugarG: 0.1, CalciumMg: 10, IronMg: 0.2, FolateMcg: 58,
		},
		Portions:   []nutrition.Portion{{Label: "1 porsi", WeightGrams: 100}},
		Diet:       nutrition.DietFlags{Vegetarian: true, Vegan: true, HalalCertified: true},
		Nationwide: true,
		Popularity: 5,
	}
}

func mustCreateFood(t *testing.T, catalog *services.CatalogService, item nutrition.FoodItem) nutrition.FoodItem {
	t.Helper()
	created, err := catalog.Create(item)
	if err != nil {
		t.Fatalf("create food %s: %v", item.ID, err)
	}
	return created
}
