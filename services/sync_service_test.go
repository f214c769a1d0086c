package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

type syncFixture struct {
	catalog *services.CatalogService
	logs    *services.LogService
	summary *services.SummaryService
	hub     *services.RealtimeHub
	user    *models.User
}

func newSyncFixture(t *testing.T) (*syncFixture, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	f := &syncFixture{hub: services.NewRealtimeHub()}
	f.catalog = services.NewCatalogService(db, 0, 0)
	f.summary = services.NewSummaryService(db, f.catalog)
	f.logs = services.NewLogService(db, f.catalog, f.summary)
	f.user = seedUser(t, db, 2000)
	mustCreateFood(t, f.catalog, baseFood("nasi-putih", "Nasi Putih"))
	return f, db
}

type pushedChange struct {
	ID       string `json:"id"`
	Seq      uint64 `json:"seq"`
	UserID   string `json:"user_id"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	Action   string `json:"action"`
}

func TestSyncRunPushesAndPulls(t *testing.T) {
	f, db := newSyncFixture(t)

	// One local write: journals the entry plus the recomputed day snapshot.
	yesterday := time.Now().AddDate(0, 0, -1)
	if _, err := f.logs.Add(f.user.ID, services.LogEntryRequest{FoodID: "nasi-putih", Meal: "lunch"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	foodJSON, err := json.Marshal(baseFood("rendang-daging", "Rendang Daging"))
	if err != nil {
		t.Fatalf("marshal food: %v", err)
	}
	entryJSON, err := json.Marshal(models.LogEntry{
		ID:       "pulled-entry",
		UserID:   f.user.ID,
		FoodID:   "nasi-putih",
		Quantity: 1,
		Meal:     "dinner",
		EatenAt:  yesterday,
	})
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}

	var pushed []pushedChange
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/changes", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodPost:
			var in struct {
				UserID  string         `json:"user_id"`
				Changes []pushedChange `json:"changes"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			pushed = append(pushed, in.Changes...)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"accepted":true}`))
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"changes": []map[string]any{
					{
						"id": "remote-1", "seq": 1, "user_id": "",
						"entity": "food_item", "entity_id": "rendang-daging",
						"action": "create", "payload": json.RawMessage(foodJSON),
					},
					{
						"id": "remote-2", "seq": 2, "user_id": f.user.ID,
						"entity": "log_entry", "entity_id": "pulled-entry",
						"action": "create", "payload": json.RawMessage(entryJSON),
					},
				},
			})
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	t.Setenv("SYNC_BASE_URL", srv.URL)
	t.Setenv("SYNC_API_KEY", "test-key")
	sync := services.NewSyncService(db, f.catalog, f.summary, f.hub)

	report, err := sync.Run(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Pushed != 2 {
		t.Errorf("Pushed = %d, want 2", report.Pushed)
	}
	if report.Pulled != 2 || report.Applied != 2 {
		t.Errorf("Pulled/Applied = %d/%d, want 2/2", report.Pulled, report.Applied)
	}

	if len(pushed) != 2 || pushed[0].Entity != "log_entry" || pushed[1].Entity != "daily_summary" {
		t.Errorf("remote saw %+v, want log_entry then daily_summary", pushed)
	}
	for _, ch := range pushed {
		if ch.ID == "" || ch.Seq == 0 || ch.UserID != f.user.ID {
			t.Errorf("pushed change missing identity: %+v", ch)
		}
	}

	// The pulled food lands in the catalog and the pulled entry on
	// yesterday's list.
	food, err := f.catalog.Get("rendang-daging")
	if err != nil {
		t.Fatalf("Get pulled food: %v", err)
	}
	if food.Name != "Rendang Daging" {
		t.Errorf("pulled food name = %q", food.Name)
	}
	entries, err := f.logs.ListByDate(f.user.ID, yesterday)
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "pulled-entry" {
		t.Errorf("yesterday's entries = %+v, want the pulled entry", entries)
	}

	status, err := sync.Status(f.user.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.RemoteConfigured {
		t.Error("RemoteConfigured = false after Run")
	}
	// Applying the pulled entry recomputed yesterday's snapshot, which
	// journals one row that waits for the next push.
	if status.PendingChanges != 1 {
		t.Errorf("PendingChanges = %d, want 1", status.PendingChanges)
	}
	if status.LastPushedSeq == 0 {
		t.Error("LastPushedSeq not advanced")
	}
	if status.LastPulledAt.IsZero() {
		t.Error("LastPulledAt not recorded")
	}
}

func TestSyncRemoteFailureKeepsJournal(t *testing.T) {
	f, db := newSyncFixture(t)
	if _, err := f.logs.Add(f.user.ID, services.LogEntryRequest{FoodID: "nasi-putih", Meal: "lunch"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backup store down", http.StatusInternalServerError)
	}))
	defer srv.Close()
	t.Setenv("SYNC_BASE_URL", srv.URL)
	sync := services.NewSyncService(db, f.catalog, f.summary, f.hub)

	_, err := sync.Run(context.Background(), f.user.ID)
	if apperrors.KindOf(err) != apperrors.KindSyncUnavailable {
		t.Fatalf("kind = %v, want sync unavailable", apperrors.KindOf(err))
	}

	status, err := sync.Status(f.user.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.PendingChanges != 2 {
		t.Errorf("PendingChanges = %d, want 2 kept for retry", status.PendingChanges)
	}
	if status.LastPushedSeq != 0 {
		t.Errorf("LastPushedSeq = %d, want 0", status.LastPushedSeq)
	}
}

func TestSyncWithoutRemote(t *testing.T) {
	f, db := newSyncFixture(t)
	t.Setenv("SYNC_BASE_URL", "")
	sync := services.NewSyncService(db, f.catalog, f.summary, f.hub)

	if _, err := sync.Run(context.Background(), f.user.ID); apperrors.KindOf(err) != apperrors.KindSyncUnavailable {
		t.Fatalf("kind = %v, want sync unavailable", apperrors.KindOf(err))
	}

	// RunAll is the cron entrypoint; without a remote it must be a no-op.
	sync.RunAll(context.Background())

	status, err := sync.Status(f.user.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.RemoteConfigured {
		t.Error("RemoteConfigured = true without a base URL")
	}
}

func TestSyncDisabledByFlag(t *testing.T) {
	f, db := newSyncFixture(t)
	t.Setenv("SYNC_BASE_URL", "http://backup.internal")
	t.Setenv("SYNC_ENABLED", "false")
	sync := services.NewSyncService(db, f.catalog, f.summary, f.hub)

	if _, err := sync.Run(context.Background(), f.user.ID); apperrors.KindOf(err) != apperrors.KindSyncUnavailable {
		t.Fatalf("kind = %v, want sync unavailable", apperrors.KindOf(err))
	}
}

func TestSnapshotWithoutS3(t *testing.T) {
	f, db := newSyncFixture(t)
	sync := services.NewSyncService(db, f.catalog, f.summary, f.hub)

	_, err := sync.ExportSnapshot(context.Background(), f.user.ID)
	if apperrors.KindOf(err) != apperrors.KindSyncUnavailable {
		t.Fatalf("kind = %v, want sync unavailable", apperrors.KindOf(err))
	}
}
