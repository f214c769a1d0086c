package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
)

// LogEntry is one consumption event. Date is denormalized from EatenAt so
// day queries hit an index instead of a timestamp range scan.
type LogEntry struct {
	ID           string  `gorm:"primaryKey;size:36"`
	UserID       string  `gorm:"size:36;index:idx_log_user_date;not null"`
	FoodID       string  `gorm:"size:64;index;not null"`
	PortionIndex int     `gorm:"not null"`
	Quantity     float64 `gorm:"default:1"` // portions eaten, e.g. 1.5
	Meal         string  `gorm:"size:16"`   // breakfast | lunch | dinner | snack
	Note         string  `gorm:"type:text"` // optional free text

	EatenAt time.Time      `gorm:"not null"`
	Date    datatypes.Date `gorm:"index:idx_log_user_date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *LogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (e *LogEntry) BeforeSave(tx *gorm.DB) error {
	if !e.EatenAt.IsZero() {
		e.Date = DateOf(e.EatenAt)
	}
	return nil
}

// ToDomain converts the row into the value Aggregate consumes.
func (e *LogEntry) ToDomain() nutrition.LogEntry {
	return nutrition.LogEntry{
		ID:           e.ID,
		FoodID:       e.FoodID,
		PortionIndex: e.PortionIndex,
		Quantity:     e.Quantity,
		Meal:         nutrition.MealType(e.Meal),
		EatenAt:      e.EatenAt,
	}
}

// DateOf truncates t to its local calendar day.
func DateOf(t time.Time) datatypes.Date {
	tt := t.Local()
	return datatypes.Date(time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local))
}
