package models

import "time"

// Message is a client inbox entry.
type Message struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	From      string    `gorm:"type:varchar(255);not null" json:"from"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	Body      string    `gorm:"type:text" json:"body"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Announcement is an employee board entry.
type Announcement struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
