package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/logger"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
)

// SummaryService computes daily totals and their classification. Reads are
// always fresh from the log; Recompute additionally persists the snapshot
// row that feeds history and sync, and raises any newly crossed alerts.
type SummaryService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewSummaryService(db *gorm.DB, catalog *CatalogService) *SummaryService {
	return &SummaryService{db: db, catalog: catalog}
}

type DailySummaryView struct {
	Date            string                `json:"date"`
	Totals          nutrition.Nutrients   `json:"totals"`
	TargetCalories  float64               `json:"target_calories"`
	PercentOfTarget float64               `json:"percent_of_target"`
	Status          nutrition.Status      `json:"status"`
	Alerts          []nutrition.AlertCode `json:"alerts"`
	EntryCount      int                   `json:"entry_count"`
}

// Daily aggregates and classifies one user-day from the live log entries.
func (s *SummaryService) Daily(userID string, day time.Time) (*DailySummaryView, error) {
	const op = "summary.Daily"

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Errorf(apperrors.KindNotFound, op, "no user %s", userID)
		}
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}

	var rows []models.LogEntry
	if err := s.db.Where("user_id = ? AND date = ?", userID, models.DateOf(day)).Find(&rows).Error; err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	entries := make([]nutrition.LogEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToDomain())
	}

	totals, err := nutrition.Aggregate(entries, s.catalog)
	if err != nil {
		return nil, err
	}
	status, alerts, err := nutrition.Classify(totals, user.DailyCalorieTarget)
	if err != nil {
		return nil, err
	}

	return &DailySummaryView{
		Date:            day.Local().Format("2006-01-02"),
		Totals:          totals.Rounded(),
		TargetCalories:  user.DailyCalorieTarget,
		PercentOfTarget: nutrition.PercentOfTarget(totals.Calories, user.DailyCalorieTarget),
		Status:          status,
		Alerts:          alerts,
		EntryCount:      len(entries),
	}, nil
}

// Recompute refreshes the stored snapshot for one user-day and persists any
// alert codes that were not already on record, broadcasting each new one.
// Log mutations call this after every write.
func (s *SummaryService) Recompute(userID string, day time.Time) error {
	const op = "summary.Recompute"

	view, err := s.Daily(userID, day)
	if err != nil {
		return err
	}

	date := models.DateOf(day)
	alerts := make([]string, 0, len(view.Alerts))
	for _, a := range view.Alerts {
		alerts = append(alerts, string(a))
	}

	var snap models.DailySummary
	err = s.db.Where("user_id = ? AND date = ?", userID, date).First(&snap).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		snap = models.DailySummary{
			UserID:          userID,
			Date:            date,
			Totals:          view.Totals,
			TargetCalories:  view.TargetCalories,
			PercentOfTarget: view.PercentOfTarget,
			Status:          string(view.Status),
			Alerts:          alerts,
			ComputedAt:      time.Now(),
		}
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&snap).Error; err != nil {
				return apperrors.E(apperrors.KindStorage, op, err)
			}
			return recordChange(tx, userID, "daily_summary", snap.ID, models.ChangeCreate, snap)
		})
	case err != nil:
		return apperrors.E(apperrors.KindStorage, op, err)
	default:
		snap.Totals = view.Totals
		snap.TargetCalories = view.TargetCalories
		snap.PercentOfTarget = view.PercentOfTarget
		snap.Status = string(view.Status)
		snap.Alerts = alerts
		snap.ComputedAt = time.Now()
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&snap).Error; err != nil {
				return apperrors.E(apperrors.KindStorage, op, err)
			}
			return recordChange(tx, userID, "daily_summary", snap.ID, models.ChangeUpdate, snap)
		})
	}
	if err != nil {
		return err
	}

	s.raiseNewAlerts(userID, date, view.Alerts)
	return nil
}

// raiseNewAlerts persists alert codes not yet on record for the day and
// pushes them onto the bus. Best-effort: a failed insert is logged, not
// returned, because the summary itself already committed.
func (s *SummaryService) raiseNewAlerts(userID string, date datatypes.Date, codes []nutrition.AlertCode) {
	var existing []models.Alert
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).Find(&existing).Error; err != nil {
		logger.L().Warn("alert lookup failed", zap.String("user_id", userID), zap.Error(err))
		return
	}
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a.Code] = true
	}
	for _, code := range codes {
		if seen[string(code)] {
			continue
		}
		EmitAlert(userID, date, string(code))
	}
}
