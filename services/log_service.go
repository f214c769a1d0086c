package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/logger"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
)

// LogService owns consumption entries. Every mutation validates against the
// catalog, lands in the sync journal, and recomputes the affected day so
// summaries and alerts never lag behind the log.
type LogService struct {
	catalog *CatalogService
	summary *SummaryService
	db      *gorm.DB
}

func NewLogService(db *gorm.DB, catalog *CatalogService, summary *SummaryService) *LogService {
	return &LogService{catalog: catalog, summary: summary, db: db}
}

type LogEntryRequest struct {
	FoodID       string    `json:"food_id" binding:"required"`
	PortionIndex int       `json:"portion_index"`
	Quantity     float64   `json:"quantity"`
	Meal         string    `json:"meal" binding:"required"`
	EatenAt      time.Time `json:"eaten_at"`
	Note         string    `json:"note"`
}

// validate resolves the food and checks the request against it, so bad
// portion indexes are rejected at write time instead of poisoning every
// later aggregation.
func (s *LogService) validate(req *LogEntryRequest) error {
	const op = "log.validate"
	food, err := s.catalog.Get(req.FoodID)
	if err != nil {
		return err
	}
	if req.PortionIndex < 0 || req.PortionIndex >= len(food.Portions) {
		return apperrors.Errorf(apperrors.KindInvalidPortionIndex, op,
			"portion index %d out of range for food %s (%d portions)",
			req.PortionIndex, req.FoodID, len(food.Portions))
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return apperrors.Errorf(apperrors.KindInvalidPortion, op, "quantity %.2f must be positive", req.Quantity)
	}
	if !nutrition.MealType(req.Meal).Valid() {
		return apperrors.Errorf(apperrors.KindValidation, op, "unknown meal type %q", req.Meal)
	}
	if req.EatenAt.IsZero() {
		req.EatenAt = time.Now()
	}
	return nil
}

func (s *LogService) Add(userID string, req LogEntryRequest) (*models.LogEntry, error) {
	const op = "log.Add"
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	entry := models.LogEntry{
		UserID:       userID,
		FoodID:       req.FoodID,
		PortionIndex: req.PortionIndex,
		Quantity:     req.Quantity,
		Meal:         req.Meal,
		EatenAt:      req.EatenAt,
		Note:         req.Note,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return apperrors.E(apperrors.KindStorage, op, err)
		}
		return recordChange(tx, userID, "log_entry", entry.ID, models.ChangeCreate, entry)
	})
	if err != nil {
		return nil, err
	}
	s.recompute(userID, entry.EatenAt)
	return &entry, nil
}

func (s *LogService) ListByDate(userID string, day time.Time) ([]models.LogEntry, error) {
	const op = "log.ListByDate"
	var entries []models.LogEntry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, models.DateOf(day)).
		Order("eaten_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	return entries, nil
}

func (s *LogService) Update(userID, entryID string, req LogEntryRequest) (*models.LogEntry, error) {
	const op = "log.Update"
	var entry models.LogEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Errorf(apperrors.KindNotFound, op, "no log entry %s", entryID)
		}
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	previousDay := time.Time(entry.Date)
	entry.FoodID = req.FoodID
	entry.PortionIndex = req.PortionIndex
	entry.Quantity = req.Quantity
	entry.Meal = req.Meal
	entry.EatenAt = req.EatenAt
	entry.Note = req.Note

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&entry).Error; err != nil {
			return apperrors.E(apperrors.KindStorage, op, err)
		}
		return recordChange(tx, userID, "log_entry", entry.ID, models.ChangeUpdate, entry)
	})
	if err != nil {
		return nil, err
	}

	s.recompute(userID, entry.EatenAt)
	if !sameDay(previousDay, entry.EatenAt) {
		s.recompute(userID, previousDay)
	}
	return &entry, nil
}

func (s *LogService) Delete(userID, entryID string) error {
	const op = "log.Delete"
	var entry models.LogEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Errorf(apperrors.KindNotFound, op, "no log entry %s", entryID)
		}
		return apperrors.E(apperrors.KindStorage, op, err)
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entry).Error; err != nil {
			return apperrors.E(apperrors.KindStorage, op, err)
		}
		return recordChange(tx, userID, "log_entry", entry.ID, models.ChangeDelete, nil)
	})
	if err != nil {
		return err
	}
	s.recompute(userID, entry.EatenAt)
	return nil
}

// recompute refreshes the day's snapshot after a committed mutation. The
// write already succeeded, so a recompute failure is logged, not returned.
func (s *LogService) recompute(userID string, day time.Time) {
	if err := s.summary.Recompute(userID, day); err != nil {
		logger.L().Warn("log: summary recompute failed",
			zap.String("user_id", userID), zap.Error(err))
	}
}

func sameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}
