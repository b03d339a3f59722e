package models

import "time"

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "Draft"
	ContentStatusPublished ContentStatus = "Published"
	ContentStatusArchived  ContentStatus = "Archived"
)

type BlogPost struct {
	ID        uint64        `gorm:"primarykey" json:"id"`
	Title     string        `gorm:"type:varchar(255);not null" json:"title"`
	Category  string        `gorm:"type:varchar(100);not null" json:"category"`
	Status    ContentStatus `gorm:"type:varchar(20);not null;default:'Draft'" json:"status"`
	Author    string        `gorm:"type:varchar(255)" json:"author"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type PortfolioItem struct {
	ID        uint64        `gorm:"primarykey" json:"id"`
	Title     string        `gorm:"type:varchar(255);not null" json:"title"`
	Client    string        `gorm:"type:varchar(255)" json:"client"`
	Category  string        `gorm:"type:varchar(100);not null" json:"category"`
	Status    ContentStatus `gorm:"type:varchar(20);not null;default:'Draft'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type MediaAsset struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Type       string    `gorm:"type:varchar(50)" json:"type"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}
