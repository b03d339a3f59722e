package models

import "time"

type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "New"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusReview     TaskStatus = "Review"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"
)

// Task is a unit of work on the employee dashboard. Client and Assignee are
// weak references: display names, not foreign keys.
type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Client      string       `gorm:"type:varchar(255)" json:"client"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'New'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'Medium'" json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	Description string       `gorm:"type:text" json:"description"`
	Assignee    string       `gorm:"type:varchar(255)" json:"assignee,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
