package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
)

// DailySummary is the stored snapshot of one user-day: totals, status and
// alerts as classified the last time the day was computed. Live reads
// recompute from log entries; this table feeds history and sync.
type DailySummary struct {
	ID     string         `gorm:"primaryKey;size:36"`
	UserID string         `gorm:"size:36;uniqueIndex:idx_summary_user_date;not null"`
	Date   datatypes.Date `gorm:"uniqueIndex:idx_summary_user_date;not null"`

	Totals nutrition.Nutrients `gorm:"embedded;embeddedPrefix:nutr_"`

	TargetCalories  float64
	PercentOfTarget float64
	Status          string   `gorm:"size:12"` // below | on-target | above
	Alerts          []string `gorm:"serializer:json"`

	ComputedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s *DailySummary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
