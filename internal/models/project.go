package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusActive     ProjectStatus = "Active"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
)

type Project struct {
	ID        uint64        `gorm:"primarykey" json:"id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Client    string        `gorm:"type:varchar(255)" json:"client"`
	Type      string        `gorm:"type:varchar(100)" json:"type"`
	Status    ProjectStatus `gorm:"type:varchar(20);not null;default:'Planning'" json:"status"`
	Progress  int           `gorm:"not null;default:0" json:"progress"`
	Budget    float64       `json:"budget"`
	Deadline  *time.Time    `json:"deadline"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BeforeSave keeps progress inside [0,100] no matter what the caller wrote.
func (p *Project) BeforeSave(*gorm.DB) error {
	if p.Progress < 0 {
		p.Progress = 0
	}
	if p.Progress > 100 {
		p.Progress = 100
	}
	return nil
}
