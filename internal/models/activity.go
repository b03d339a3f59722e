package models

import "time"

type ActivityType string

const (
	ActivityTypeTask     ActivityType = "task"
	ActivityTypeApproval ActivityType = "approval"
	ActivityTypeContent  ActivityType = "content"
	ActivityTypeSystem   ActivityType = "system"
)

// ActivityEntry is an append-only audit feed row. Entries are never updated
// or deleted; the repository exposes only Append and List.
type ActivityEntry struct {
	ID        uint64       `gorm:"primarykey" json:"id"`
	Title     string       `gorm:"type:varchar(255);not null" json:"title"`
	Actor     string       `gorm:"type:varchar(255);not null" json:"actor"`
	Type      ActivityType `gorm:"type:varchar(20);not null" json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}
