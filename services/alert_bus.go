package services

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/models"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists one alert code for a user-day and fans it out to the
// user's websocket sessions. Safe to call anywhere; a no-op before
// InitAlertDeps runs.
func EmitAlert(userID string, date datatypes.Date, code string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Date: date, Code: code, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}
