package models

import "time"

type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "Submitted"
	SubmissionStatusReviewed  SubmissionStatus = "Reviewed"
)

// Submission is a work report filed from the employee dashboard. TaskTitle is
// a weak reference to a task by title.
type Submission struct {
	ID          uint64           `gorm:"primarykey" json:"id"`
	TaskTitle   string           `gorm:"type:varchar(255);not null" json:"task_title"`
	Note        string           `gorm:"type:text" json:"note"`
	SubmittedBy string           `gorm:"type:varchar(255);not null" json:"submitted_by"`
	Status      SubmissionStatus `gorm:"type:varchar(20);not null;default:'Submitted'" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}
