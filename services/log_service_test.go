package services_test

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

func newLogFixture(t *testing.T) (*gorm.DB, *services.LogService, *models.User) {
	t.Helper()
	db := newTestDB(t)
	catalog := services.NewCatalogService(db, 0, 0)
	summary := services.NewSummaryService(db, catalog)
	logs := services.NewLogService(db, catalog, summary)
	user := seedUser(t, db, 2000)

	nasi := baseFood("nasi-putih", "Nasi Putih")
	nasi.Portions = []nutrition.Portion{
		{Label: "1 centong", WeightGrams: 100},
		{Label: "1 piring", WeightGrams: 200},
	}
	mustCreateFood(t, catalog, nasi)

	tempe := baseFood("tempe-goreng", "Tempe Goreng")
	tempe.Per100g.Calories = 225
	tempe.Per100g.Fiber = 5.0
	tempe.Portions = []nutrition.Portion{{Label: "1 potong", WeightGrams: 50}}
	mustCreateFood(t, catalog, tempe)

	return db, logs, user
}

func TestLogAddPersistsAndJournals(t *testing.T) {
	db, logs, user := newLogFixture(t)

	entry, err := logs.Add(user.ID, services.LogEntryRequest{
		FoodID:       "nasi-putih",
		PortionIndex: 1,
		Meal:         "lunch",
		Note:         "makan siang di kantor",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if entry.ID == "" {
		t.Error("Add left entry ID empty")
	}
	if entry.Quantity != 1 {
		t.Errorf("Add quantity = %v, want default 1", entry.Quantity)
	}
	if got, want := time.Time(entry.Date), time.Now(); got.Day() != want.Day() {
		t.Errorf("Add date = %v, want today", got)
	}

	var journaled int64
	db.Model(&models.ChangeRecord{}).
		Where("entity = ? AND action = ?", "log_entry", models.ChangeCreate).
		Count(&journaled)
	if journaled != 1 {
		t.Errorf("journal rows = %d, want 1", journaled)
	}

	var snap models.DailySummary
	err = db.Where("user_id = ? AND date = ?", user.ID, models.DateOf(time.Now())).First(&snap).Error
	if err != nil {
		t.Fatalf("snapshot after add: %v", err)
	}
	if snap.Totals.Calories != 260 {
		t.Errorf("snapshot calories = %v, want 260", snap.Totals.Calories)
	}
	if snap.Status != string(nutrition.StatusBelow) {
		t.Errorf("snapshot status = %q, want below", snap.Status)
	}
}

func TestLogAddRejections(t *testing.T) {
	_, logs, user := newLogFixture(t)

	tests := []struct {
		name string
		req  services.LogEntryRequest
		want error
	}{
		{
			name: "unknown food",
			req:  services.LogEntryRequest{FoodID: "ghost", Meal: "lunch"},
			want: apperrors.ErrUnknownFood,
		},
		{
			name: "portion index out of range",
			req:  services.LogEntryRequest{FoodID: "nasi-putih", PortionIndex: 2, Meal: "lunch"},
			want: apperrors.ErrInvalidPortionIndex,
		},
		{
			name: "negative quantity",
			req:  services.LogEntryRequest{FoodID: "nasi-putih", Quantity: -1, Meal: "lunch"},
			want: apperrors.ErrInvalidPortion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := logs.Add(user.ID, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("Add err = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("unknown meal type", func(t *testing.T) {
		_, err := logs.Add(user.ID, services.LogEntryRequest{FoodID: "nasi-putih", Meal: "brunch"})
		if apperrors.KindOf(err) != apperrors.KindValidation {
			t.Errorf("Add kind = %v, want validation", apperrors.KindOf(err))
		}
	})
}

func TestLogListByDate(t *testing.T) {
	_, logs, user := newLogFixture(t)
	yesterday := time.Now().AddDate(0, 0, -1)

	if _, err := logs.Add(user.ID, services.LogEntryRequest{FoodID: "nasi-putih", Meal: "lunch"}); err != nil {
		t.Fatalf("Add today: %v", err)
	}
	if _, err := logs.Add(user.ID, services.LogEntryRequest{
		FoodID: "tempe-goreng", Meal: "dinner", EatenAt: yesterday,
	}); err != nil {
		t.Fatalf("Add yesterday: %v", err)
	}

	today, err := logs.ListByDate(user.ID, time.Now())
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(today) != 1 || today[0].FoodID != "nasi-putih" {
		t.Errorf("ListByDate(today) = %d entries, want the nasi-putih one", len(today))
	}

	prev, err := logs.ListByDate(user.ID, yesterday)
	if err != nil {
		t.Fatalf("ListByDate yesterday: %v", err)
	}
	if len(prev) != 1 || prev[0].FoodID != "tempe-goreng" {
		t.Errorf("ListByDate(yesterday) = %d entries, want the tempe-goreng one", len(prev))
	}
}

func TestLogUpdateMovesDay(t *testing.T) {
	db, logs, user := newLogFixture(t)
	yesterday := time.Now().AddDate(0, 0, -1)

	entry, err := logs.Add(user.ID, services.LogEntryRequest{
		FoodID: "nasi-putih", PortionIndex: 1, Meal: "dinner", EatenAt: yesterday,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := logs.Update(user.ID, entry.ID, services.LogEntryRequest{
		FoodID: "nasi-putih", PortionIndex: 1, Meal: "dinner", EatenAt: time.Now(),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	prev, err := logs.ListByDate(user.ID, yesterday)
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(prev) != 0 {
		t.Errorf("yesterday still has %d entries after move", len(prev))
	}

	// Both day snapshots refreshed: the old one back to zero, the new one
	// carrying the moved entry.
	var oldSnap, newSnap models.DailySummary
	if err := db.Where("user_id = ? AND date = ?", user.ID, models.DateOf(yesterday)).First(&oldSnap).Error; err != nil {
		t.Fatalf("old snapshot: %v", err)
	}
	if oldSnap.Totals.Calories != 0 {
		t.Errorf("old day calories = %v, want 0", oldSnap.Totals.Calories)
	}
	if err := db.Where("user_id = ? AND date = ?", user.ID, models.DateOf(time.Now())).First(&newSnap).Error; err != nil {
		t.Fatalf("new snapshot: %v", err)
	}
	if newSnap.Totals.Calories != 260 {
		t.Errorf("new day calories = %v, want 260", newSnap.Totals.Calories)
	}
}

func TestLogDelete(t *testing.T) {
	db, logs, user := newLogFixture(t)

	entry, err := logs.Add(user.ID, services.LogEntryRequest{FoodID: "tempe-goreng", Meal: "snack"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := logs.Delete(user.ID, entry.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	remaining, err := logs.ListByDate(user.ID, time.Now())
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("entries after delete = %d, want 0", len(remaining))
	}

	var snap models.DailySummary
	if err := db.Where("user_id = ? AND date = ?", user.ID, models.DateOf(time.Now())).First(&snap).Error; err != nil {
		t.Fatalf("snapshot after delete: %v", err)
	}
	if snap.Totals.Calories != 0 {
		t.Errorf("snapshot calories after delete = %v, want 0", snap.Totals.Calories)
	}

	var journaled int64
	db.Model(&models.ChangeRecord{}).
		Where("entity = ? AND action = ?", "log_entry", models.ChangeDelete).
		Count(&journaled)
	if journaled != 1 {
		t.Errorf("delete journal rows = %d, want 1", journaled)
	}

	if err := logs.Delete(user.ID, entry.ID); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Delete twice kind = %v, want not_found", apperrors.KindOf(err))
	}
}

func TestLogEntriesScopedToOwner(t *testing.T) {
	db, logs, user := newLogFixture(t)
	other := &models.User{Email: "other@example.com", Password: "x", DailyCalorieTarget: 2000}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("seed second user: %v", err)
	}

	entry, err := logs.Add(user.ID, services.LogEntryRequest{FoodID: "nasi-putih", Meal: "breakfast"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := logs.Update(other.ID, entry.ID, services.LogEntryRequest{
		FoodID: "nasi-putih", Meal: "lunch",
	}); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Update as other user kind = %v, want not_found", apperrors.KindOf(err))
	}
	if err := logs.Delete(other.ID, entry.ID); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Delete as other user kind = %v, want not_found", apperrors.KindOf(err))
	}
}
