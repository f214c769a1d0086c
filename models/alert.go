package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Alert is one persisted coaching alert. Code is the machine-readable key
// (SALT_EXCESS, FIBER_LOW, ...); message text is rendered per-language at
// the API edge, never stored.
type Alert struct {
	ID           string         `gorm:"primaryKey;size:36"`
	UserID       string         `gorm:"size:36;index:idx_alert_user_date"`
	Date         datatypes.Date `gorm:"index:idx_alert_user_date"`
	Code         string         `gorm:"size:24;not null"`
	Acknowledged bool           `gorm:"default:false"`
	CreatedAt    time.Time
}

func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
