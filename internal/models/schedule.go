package models

import "time"

type ScheduleType string

const (
	ScheduleTypeMeeting  ScheduleType = "meeting"
	ScheduleTypeDeadline ScheduleType = "deadline"
	ScheduleTypeReview   ScheduleType = "review"
	ScheduleTypeTraining ScheduleType = "training"
)

// ScheduleItem is read-only from the dashboard's perspective; items are
// seeded at startup.
type ScheduleItem struct {
	ID        uint64       `gorm:"primarykey" json:"id"`
	Title     string       `gorm:"type:varchar(255);not null" json:"title"`
	StartsAt  time.Time    `json:"starts_at"`
	Type      ScheduleType `gorm:"type:varchar(20);not null" json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}
