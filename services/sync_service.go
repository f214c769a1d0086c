package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/logger"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
	"github.com/neimasilk/healthycoaching-id-sub000/utils"
)

// recordChange appends one row to the sync journal inside the caller's
// transaction. Every service mutation of a synced entity goes through here
// so the remote push never misses a write.
func recordChange(tx *gorm.DB, userID, entity, entityID, action string, payload any) error {
	rec := models.ChangeRecord{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return apperrors.E(apperrors.KindInternal, "sync.recordChange", err)
		}
		rec.Payload = datatypes.JSON(b)
	}
	if err := tx.Create(&rec).Error; err != nil {
		return apperrors.E(apperrors.KindStorage, "sync.recordChange", err)
	}
	return nil
}

const pushBatchSize = 200

// SyncService moves the local journal to the remote backup service and
// applies remote changes back, per user. The remote is optional: without
// SYNC_BASE_URL the app stays fully local and Run reports the sync as
// unavailable.
type SyncService struct {
	db      *gorm.DB
	catalog *CatalogService
	summary *SummaryService
	hub     *RealtimeHub

	baseURL string
	apiKey  string
	client  *http.Client
}

func NewSyncService(db *gorm.DB, catalog *CatalogService, summary *SummaryService, hub *RealtimeHub) *SyncService {
	baseURL := os.Getenv("SYNC_BASE_URL")
	if os.Getenv("SYNC_ENABLED") == "false" {
		baseURL = ""
	}
	return &SyncService{
		db:      db,
		catalog: catalog,
		summary: summary,
		hub:     hub,
		baseURL: baseURL,
		apiKey:  os.Getenv("SYNC_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// remoteChange is the wire shape of one journal row.
type remoteChange struct {
	ID        string          `json:"id"`
	Seq       uint64          `json:"seq"`
	UserID    string          `json:"user_id"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entity_id"`
	Action    string          `json:"action"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type SyncReport struct {
	Pushed      int    `json:"pushed"`
	Pulled      int    `json:"pulled"`
	Applied     int    `json:"applied"`
	SnapshotKey string `json:"snapshot_key,omitempty"`
}

type SyncStatus struct {
	RemoteConfigured bool      `json:"remote_configured"`
	PendingChanges   int64     `json:"pending_changes"`
	LastPushedSeq    uint64    `json:"last_pushed_seq"`
	LastPulledAt     time.Time `json:"last_pulled_at"`
	LastSnapshotKey  string    `json:"last_snapshot_key,omitempty"`
	LiveSessions     int       `json:"live_sessions"`
}

// Run pushes the user's unsynced journal rows, then pulls and applies
// remote changes since the last pull.
func (s *SyncService) Run(ctx context.Context, userID string) (*SyncReport, error) {
	const op = "sync.Run"
	if s.baseURL == "" {
		return nil, apperrors.Errorf(apperrors.KindSyncUnavailable, op, "SYNC_BASE_URL not configured")
	}

	report := &SyncReport{}

	pushed, err := s.push(ctx, userID)
	if err != nil {
		return nil, err
	}
	report.Pushed = pushed

	pulled, applied, err := s.pull(ctx, userID)
	if err != nil {
		return nil, err
	}
	report.Pulled = pulled
	report.Applied = applied

	return report, nil
}

// RunAll syncs every user that has unsynced journal rows. The scheduler
// calls this; failures for one user do not stop the others.
func (s *SyncService) RunAll(ctx context.Context) {
	if s.baseURL == "" {
		return
	}
	var userIDs []string
	err := s.db.Model(&models.ChangeRecord{}).
		Where("synced_at IS NULL").
		Distinct().
		Pluck("user_id", &userIDs).Error
	if err != nil {
		logger.L().Warn("sync: listing pending users failed", zap.Error(err))
		return
	}
	for _, id := range userIDs {
		if _, err := s.Run(ctx, id); err != nil {
			logger.L().Warn("sync: run failed", zap.String("user_id", id), zap.Error(err))
		}
	}
}

// Status reports the journal position without touching the network.
func (s *SyncService) Status(userID string) (*SyncStatus, error) {
	const op = "sync.Status"
	var pending int64
	if err := s.db.Model(&models.ChangeRecord{}).
		Where("user_id = ? AND synced_at IS NULL", userID).
		Count(&pending).Error; err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	var state models.SyncState
	if err := s.db.FirstOrInit(&state, models.SyncState{UserID: userID}).Error; err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	status := &SyncStatus{
		RemoteConfigured: s.baseURL != "",
		PendingChanges:   pending,
		LastPushedSeq:    state.LastPushedSeq,
		LastPulledAt:     state.LastPulledAt,
		LastSnapshotKey:  state.LastSnapshotKey,
	}
	if s.hub != nil {
		status.LiveSessions = s.hub.Sessions(userID)
	}
	return status, nil
}

func (s *SyncService) push(ctx context.Context, userID string) (int, error) {
	const op = "sync.push"
	total := 0
	for {
		var batch []models.ChangeRecord
		err := s.db.
			Where("user_id = ? AND synced_at IS NULL", userID).
			Order("seq ASC").
			Limit(pushBatchSize).
			Find(&batch).Error
		if err != nil {
			return total, apperrors.E(apperrors.KindStorage, op, err)
		}
		if len(batch) == 0 {
			return total, nil
		}

		changes := make([]remoteChange, 0, len(batch))
		for _, rec := range batch {
			changes = append(changes, remoteChange{
				ID:        rec.ID,
				Seq:       rec.Seq,
				UserID:    rec.UserID,
				Entity:    rec.Entity,
				EntityID:  rec.EntityID,
				Action:    rec.Action,
				Payload:   json.RawMessage(rec.Payload),
				CreatedAt: rec.CreatedAt,
			})
		}
		body, err := json.Marshal(map[string]any{"user_id": userID, "changes": changes})
		if err != nil {
			return total, apperrors.E(apperrors.KindInternal, op, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/changes", bytes.NewReader(body))
		if err != nil {
			return total, apperrors.E(apperrors.KindInternal, op, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", s.apiKey)

		resp, err := s.client.Do(req)
		if err != nil {
			return total, apperrors.Errorf(apperrors.KindSyncUnavailable, op, "push failed: %v", err)
		}
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return total, apperrors.Errorf(apperrors.KindSyncUnavailable, op,
				"remote returned %d: %s", resp.StatusCode, string(respBody))
		}

		now := time.Now()
		lastSeq := batch[len(batch)-1].Seq
		err = s.db.Transaction(func(tx *gorm.DB) error {
			ids := make([]string, 0, len(batch))
			for _, rec := range batch {
				ids = append(ids, rec.ID)
			}
			if err := tx.Model(&models.ChangeRecord{}).Where("id IN ?", ids).
				Update("synced_at", now).Error; err != nil {
				return apperrors.E(apperrors.KindStorage, op, err)
			}
			return s.advanceState(tx, userID, func(st *models.SyncState) {
				if lastSeq > st.LastPushedSeq {
					st.LastPushedSeq = lastSeq
				}
			})
		})
		if err != nil {
			return total, err
		}
		total += len(batch)
		if len(batch) < pushBatchSize {
			return total, nil
		}
	}
}

func (s *SyncService) pull(ctx context.Context, userID string) (pulled, applied int, err error) {
	const op = "sync.pull"

	var state models.SyncState
	if err := s.db.FirstOrInit(&state, models.SyncState{UserID: userID}).Error; err != nil {
		return 0, 0, apperrors.E(apperrors.KindStorage, op, err)
	}

	u := fmt.Sprintf("%s/v1/changes?user_id=%s&since=%s",
		s.baseURL, url.QueryEscape(userID), url.QueryEscape(state.LastPulledAt.UTC().Format(time.RFC3339)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, apperrors.E(apperrors.KindInternal, op, err)
	}
	req.Header.Set("X-API-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, 0, apperrors.Errorf(apperrors.KindSyncUnavailable, op, "pull failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, apperrors.Errorf(apperrors.KindSyncUnavailable, op, "read pull response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, 0, apperrors.Errorf(apperrors.KindSyncUnavailable, op,
			"remote returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Changes []remoteChange `json:"changes"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, 0, apperrors.Errorf(apperrors.KindSyncUnavailable, op, "parse pull response: %v", err)
	}

	for _, ch := range payload.Changes {
		if s.apply(ch) {
			applied++
		}
	}

	err = s.advanceState(s.db, userID, func(st *models.SyncState) {
		st.LastPulledAt = time.Now()
	})
	return len(payload.Changes), applied, err
}

// apply replays one remote change locally. Catalog entries and log entries
// are upserted by id; daily summaries are derived state, so instead of
// copying them the affected day is recomputed after log changes land.
func (s *SyncService) apply(ch remoteChange) bool {
	switch ch.Entity {
	case "food_item":
		return s.applyFood(ch)
	case "log_entry":
		return s.applyLogEntry(ch)
	default:
		return false
	}
}

func (s *SyncService) applyFood(ch remoteChange) bool {
	if ch.Action == models.ChangeDelete {
		if err := s.db.Delete(&models.FoodItem{}, "id = ?", ch.EntityID).Error; err != nil {
			logger.L().Warn("sync: delete food failed", zap.String("id", ch.EntityID), zap.Error(err))
			return false
		}
		s.catalog.cache.Remove(ch.EntityID)
		return true
	}

	var food nutrition.FoodItem
	if err := json.Unmarshal(ch.Payload, &food); err != nil {
		logger.L().Warn("sync: bad food payload", zap.String("id", ch.EntityID), zap.Error(err))
		return false
	}
	if food.ID == "" {
		food.ID = ch.EntityID
	}
	if err := food.Validate(); err != nil {
		logger.L().Warn("sync: invalid food payload", zap.String("id", ch.EntityID), zap.Error(err))
		return false
	}
	row := models.FoodItemFromDomain(food)
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		logger.L().Warn("sync: upsert food failed", zap.String("id", ch.EntityID), zap.Error(err))
		return false
	}
	s.catalog.cache.Remove(row.ID)
	return true
}

func (s *SyncService) applyLogEntry(ch remoteChange) bool {
	if ch.Action == models.ChangeDelete {
		var entry models.LogEntry
		if err := s.db.First(&entry, "id = ?", ch.EntityID).Error; err != nil {
			return false
		}
		if err := s.db.Delete(&entry).Error; err != nil {
			logger.L().Warn("sync: delete log entry failed", zap.String("id", ch.EntityID), zap.Error(err))
			return false
		}
		s.recomputeQuietly(entry.UserID, entry.EatenAt)
		return true
	}

	var entry models.LogEntry
	if err := json.Unmarshal(ch.Payload, &entry); err != nil || entry.ID == "" {
		logger.L().Warn("sync: bad log entry payload", zap.String("id", ch.EntityID), zap.Error(err))
		return false
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
		logger.L().Warn("sync: upsert log entry failed", zap.String("id", ch.EntityID), zap.Error(err))
		return false
	}
	s.recomputeQuietly(entry.UserID, entry.EatenAt)
	return true
}

func (s *SyncService) recomputeQuietly(userID string, day time.Time) {
	if err := s.summary.Recompute(userID, day); err != nil {
		logger.L().Warn("sync: recompute after apply failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *SyncService) advanceState(tx *gorm.DB, userID string, mutate func(*models.SyncState)) error {
	const op = "sync.advanceState"
	var state models.SyncState
	if err := tx.FirstOrInit(&state, models.SyncState{UserID: userID}).Error; err != nil {
		return apperrors.E(apperrors.KindStorage, op, err)
	}
	mutate(&state)
	if err := tx.Save(&state).Error; err != nil {
		return apperrors.E(apperrors.KindStorage, op, err)
	}
	return nil
}

// snapshot is the full JSON export of one user's local data.
type snapshot struct {
	ExportedAt time.Time             `json:"exported_at"`
	Profile    map[string]any        `json:"profile"`
	Entries    []models.LogEntry     `json:"entries"`
	Summaries  []models.DailySummary `json:"summaries"`
}

// ExportSnapshot uploads a full backup of the user's data to S3 and records
// the object key.
func (s *SyncService) ExportSnapshot(ctx context.Context, userID string) (string, error) {
	const op = "sync.ExportSnapshot"
	if !utils.S3Ready() {
		return "", apperrors.Errorf(apperrors.KindSyncUnavailable, op, "S3 not configured")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return "", apperrors.E(apperrors.KindStorage, op, err)
	}
	snap := snapshot{ExportedAt: time.Now(), Profile: profilePayload(&user)}

	if err := s.db.Where("user_id = ?", userID).Order("eaten_at ASC").Find(&snap.Entries).Error; err != nil {
		return "", apperrors.E(apperrors.KindStorage, op, err)
	}
	if err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&snap.Summaries).Error; err != nil {
		return "", apperrors.E(apperrors.KindStorage, op, err)
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return "", apperrors.E(apperrors.KindInternal, op, err)
	}
	key, err := utils.UploadSnapshot(ctx, userID, payload)
	if err != nil {
		return "", apperrors.Errorf(apperrors.KindSyncUnavailable, op, "snapshot upload: %v", err)
	}

	err = s.advanceState(s.db, userID, func(st *models.SyncState) {
		st.LastSnapshotKey = key
	})
	if err != nil {
		return key, err
	}
	logger.L().Info("snapshot exported", zap.String("user_id", userID), zap.String("key", key))
	return key, nil
}

// SnapshotAll exports a backup for every registered user. The nightly cron
// job calls this; a no-op when S3 was never initialized.
func (s *SyncService) SnapshotAll(ctx context.Context) {
	if !utils.S3Ready() {
		return
	}
	var userIDs []string
	if err := s.db.Model(&models.User{}).Pluck("id", &userIDs).Error; err != nil {
		logger.L().Warn("snapshot: listing users failed", zap.Error(err))
		return
	}
	for _, id := range userIDs {
		if _, err := s.ExportSnapshot(ctx, id); err != nil {
			logger.L().Warn("snapshot: export failed", zap.String("user_id", id), zap.Error(err))
		}
	}
}
