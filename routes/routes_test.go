package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/neimasilk/healthycoaching-id-sub000/config"
	"github.com/neimasilk/healthycoaching-id-sub000/routes"
)

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "routes-test-secret")
	t.Setenv("SYNC_BASE_URL", "")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	r, _ := routes.SetupRouter(db)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
}

// TestAPIFlow walks the mobile client's day-one path: register, log in,
// seed the catalog, log a meal, read the summary back.
func TestAPIFlow(t *testing.T) {
	r := newServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "budi@example.com", "password": "rahasia-banget", "full_name": "Budi",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "budi@example.com", "password": "rahasia-banget",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("second register status = %d, want 409", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "budi@example.com", "password": "salah-semua",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "budi@example.com", "password": "rahasia-banget",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	if login.Token == "" {
		t.Fatal("login returned no token")
	}
	token := login.Token

	var seeded struct {
		Created int `json:"created"`
		Skipped int `json:"skipped"`
	}
	w = doJSON(t, r, http.MethodPost, "/dev/seed", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("seed status = %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &seeded)
	if seeded.Created == 0 || seeded.Skipped != 0 {
		t.Fatalf("first seed = %+v, want everything created", seeded)
	}
	firstRun := seeded.Created

	w = doJSON(t, r, http.MethodPost, "/dev/seed", token, nil)
	decode(t, w, &seeded)
	if seeded.Created != 0 || seeded.Skipped != firstRun {
		t.Errorf("second seed = %+v, want everything skipped", seeded)
	}

	var foods struct {
		Count int `json:"count"`
	}
	w = doJSON(t, r, http.MethodGet, "/foods?q=nasi", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list foods status = %d", w.Code)
	}
	decode(t, w, &foods)
	if foods.Count == 0 {
		t.Fatal("catalog search found nothing after seeding")
	}

	w = doJSON(t, r, http.MethodPost, "/logs", token, map[string]any{
		"food_id": "nasi-putih", "meal": "lunch",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add log status = %d: %s", w.Code, w.Body.String())
	}

	var day struct {
		Status     string   `json:"status"`
		Alerts     []string `json:"alerts"`
		EntryCount int      `json:"entry_count"`
	}
	w = doJSON(t, r, http.MethodGet, "/summary/daily", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &day)
	if day.Status != "below" || day.EntryCount != 1 {
		t.Errorf("day = %+v, want status below with one entry", day)
	}
	hasFiberLow := false
	for _, a := range day.Alerts {
		if a == "FIBER_LOW" {
			hasFiberLow = true
		}
	}
	if !hasFiberLow {
		t.Errorf("alerts = %v, want FIBER_LOW present", day.Alerts)
	}

	var rec struct {
		Alert string `json:"alert"`
		Foods []struct {
			ID string `json:"id"`
		} `json:"foods"`
	}
	w = doJSON(t, r, http.MethodGet, "/foods/recommendations?limit=3", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("recommendations status = %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &rec)
	if rec.Alert != "FIBER_LOW" || len(rec.Foods) == 0 {
		t.Errorf("recommendation = %+v, want fiber foods", rec)
	}

	var status struct {
		RemoteConfigured bool  `json:"remote_configured"`
		PendingChanges   int64 `json:"pending_changes"`
	}
	w = doJSON(t, r, http.MethodGet, "/sync/status", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("sync status = %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &status)
	if status.RemoteConfigured {
		t.Error("remote_configured = true without SYNC_BASE_URL")
	}
	if status.PendingChanges == 0 {
		t.Error("pending_changes = 0, want the journaled writes")
	}

	w = doJSON(t, r, http.MethodPost, "/sync/run", token, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("sync run status = %d, want 503", w.Code)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := newServer(t)
	for _, path := range []string{"/logs", "/foods", "/summary/daily", "/user/profile", "/sync/status"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", path, w.Code)
		}
	}
}

func TestErrorEnvelopeOverHTTP(t *testing.T) {
	r := newServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "siti@example.com", "password": "rahasia-banget",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "siti@example.com", "password": "rahasia-banget",
	})
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)

	req := httptest.NewRequest(http.MethodGet, "/foods/makanan-hantu", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	req.Header.Set("Accept-Language", "id-ID,id;q=0.9")
	req.Header.Set("X-Correlation-ID", "tiket-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "tiket-123" {
		t.Errorf("header correlation id = %q, want tiket-123", got)
	}
	var body struct {
		Error         string `json:"error"`
		Code          string `json:"code"`
		CorrelationID string `json:"correlation_id"`
	}
	decode(t, rec, &body)
	if body.Code != "unknown_food" {
		t.Errorf("code = %q, want unknown_food", body.Code)
	}
	if body.Error != "makanan tidak ditemukan di katalog" {
		t.Errorf("error = %q, want the indonesian message", body.Error)
	}
	if body.CorrelationID != "tiket-123" {
		t.Errorf("body correlation id = %q, want tiket-123", body.CorrelationID)
	}
}
