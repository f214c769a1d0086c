package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Change actions recorded in the sync journal.
const (
	ChangeCreate = "create"
	ChangeUpdate = "update"
	ChangeDelete = "delete"
)

// ChangeRecord is one row of the local-first sync journal. Every mutation
// of a synced entity appends a record; the sync service pushes unsynced
// records to the remote in Seq order and stamps SyncedAt on success.
// Seq is the integer primary key so sqlite assigns it monotonically; ID is
// the device-independent identity the remote dedupes on.
type ChangeRecord struct {
	Seq      uint64         `gorm:"primaryKey;autoIncrement"`
	ID       string         `gorm:"size:36;uniqueIndex;not null"`
	UserID   string         `gorm:"size:36;index"`
	Entity   string         `gorm:"size:24;not null"` // food_item | log_entry | user | daily_summary
	EntityID string         `gorm:"size:64;not null"`
	Action   string         `gorm:"size:8;not null"`
	Payload  datatypes.JSON // entity snapshot at mutation time; empty for deletes

	CreatedAt time.Time
	SyncedAt  *time.Time `gorm:"index"`
}

func (c *ChangeRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// SyncState is the single bookkeeping row per user for the remote sync:
// how far the journal has been pushed, when the last pull ran, and where
// the last full snapshot was exported.
type SyncState struct {
	UserID          string `gorm:"primaryKey;size:36"`
	LastPushedSeq   uint64
	LastPulledAt    time.Time
	LastSnapshotKey string // object key of the latest S3 export
	UpdatedAt       time.Time
}
